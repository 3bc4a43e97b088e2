package dict

import (
	"fmt"
	"strings"
)

// SafeDict keeps its entries in a plain map, which has no inherited members,
// so every string is only ever data. The map never leaves the package.
type SafeDict struct {
	m map[string]interface{}
}

var _ Dict = (*SafeDict)(nil)

func MakeSafeDict() *SafeDict {
	return &SafeDict{
		m: make(map[string]interface{}),
	}
}

// MakeSafeDictFrom copies initial, the caller keeps ownership of its map
func MakeSafeDictFrom(initial map[string]interface{}) *SafeDict {
	d := &SafeDict{
		m: make(map[string]interface{}, len(initial)),
	}
	for k, v := range initial {
		d.m[k] = v
	}
	return d
}

func (d *SafeDict) Get(key string) (val interface{}, exists bool) {
	val, exists = d.m[key]
	return
}

func (d *SafeDict) Set(key string, val interface{}) {
	d.store()[key] = val
}

func (d *SafeDict) Has(key string) bool {
	_, ok := d.m[key]
	return ok
}

func (d *SafeDict) Del(key string) bool {
	_, ok := d.m[key]
	if !ok {
		return false
	}
	delete(d.m, key)
	return true
}

func (d *SafeDict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.m)
}

func (d *SafeDict) ForEach(consumer Consumer) {
	for key, value := range d.m {
		if !consumer(key, value) {
			break
		}
	}
}

func (d *SafeDict) Keys() []string {
	result := make([]string, 0, d.Len())
	for k := range d.m {
		result = append(result, k)
	}
	return result
}

func (d *SafeDict) Values() []interface{} {
	result := make([]interface{}, 0, d.Len())
	for _, v := range d.m {
		result = append(result, v)
	}
	return result
}

func (d *SafeDict) Items() []Item {
	result := make([]Item, 0, d.Len())
	for k, v := range d.m {
		result = append(result, Item{Key: k, Value: v})
	}
	return result
}

// View returns a read-only façade sharing this dict's entries
func (d *SafeDict) View() *View {
	return &View{d: d}
}

func (d *SafeDict) String() string {
	return format(d)
}

// store lazily allocates the map so a zero-value SafeDict is usable
func (d *SafeDict) store() map[string]interface{} {
	if d.m == nil {
		d.m = make(map[string]interface{})
	}
	return d.m
}

func format(r Reader) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	r.ForEach(func(key string, val interface{}) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %v", key, val)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
