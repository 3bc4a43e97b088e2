package dict

import (
	"sync"
	"sync/atomic"
)

// ConcurrentDict spreads keys over lock-guarded shards. Snapshots taken while
// other goroutines write are consistent per shard, not across shards.
type ConcurrentDict struct {
	table []*shard
	count int32
}

type shard struct {
	m     map[string]interface{}
	mutex sync.RWMutex
}

var _ Dict = (*ConcurrentDict)(nil)

func MakeConcurrent(shardCount int) *ConcurrentDict {
	shardCount = computeCapacity(shardCount)
	table := make([]*shard, shardCount)
	for i := 0; i < shardCount; i++ {
		table[i] = &shard{
			m: make(map[string]interface{}),
		}
	}
	return &ConcurrentDict{
		table: table,
	}
}

func (dict *ConcurrentDict) Get(key string) (val interface{}, exists bool) {
	s := dict.getShard(key)
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	val, exists = s.m[key]
	return
}

func (dict *ConcurrentDict) Set(key string, val interface{}) {
	s := dict.getShard(key)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, exists := s.m[key]; !exists {
		atomic.AddInt32(&dict.count, 1)
	}
	s.m[key] = val
}

func (dict *ConcurrentDict) Has(key string) bool {
	_, exists := dict.Get(key)
	return exists
}

func (dict *ConcurrentDict) Del(key string) bool {
	s := dict.getShard(key)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, exists := s.m[key]; !exists {
		return false
	}
	delete(s.m, key)
	atomic.AddInt32(&dict.count, -1)
	return true
}

func (dict *ConcurrentDict) Len() int {
	if dict == nil {
		return 0
	}
	return int(atomic.LoadInt32(&dict.count))
}

// ForEach must not call back into the dict with a write, the shard read lock is held
func (dict *ConcurrentDict) ForEach(consumer Consumer) {
	if dict == nil {
		return
	}
	for _, s := range dict.table {
		if !s.forEach(consumer) {
			break
		}
	}
}

func (s *shard) forEach(consumer Consumer) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for key, value := range s.m {
		if !consumer(key, value) {
			return false
		}
	}
	return true
}

func (dict *ConcurrentDict) Keys() []string {
	keys := make([]string, 0, dict.Len())
	dict.ForEach(func(key string, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (dict *ConcurrentDict) Values() []interface{} {
	values := make([]interface{}, 0, dict.Len())
	dict.ForEach(func(_ string, val interface{}) bool {
		values = append(values, val)
		return true
	})
	return values
}

func (dict *ConcurrentDict) Items() []Item {
	items := make([]Item, 0, dict.Len())
	dict.ForEach(func(key string, val interface{}) bool {
		items = append(items, Item{Key: key, Value: val})
		return true
	})
	return items
}

func (dict *ConcurrentDict) String() string {
	return format(dict)
}

func (dict *ConcurrentDict) getShard(key string) *shard {
	if dict == nil {
		panic("dict is nil")
	}
	tableSize := uint32(len(dict.table))
	return dict.table[(tableSize-1)&fnv32(key)]
}

func computeCapacity(param int) (size int) {
	if param <= 16 {
		return 16
	}
	n := param - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	if n < 0 || n >= maxShards {
		return maxShards
	}
	return n + 1
}

const maxShards = 1 << 16

const prime32 = uint32(16777619)

func fnv32(key string) uint32 {
	hash := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		hash *= prime32
		hash ^= uint32(key[i])
	}
	return hash
}
