package dict

// Consumer is called for every entry during ForEach, returning false stops the iteration
type Consumer func(key string, val interface{}) bool

type Item struct {
	Key   string
	Value interface{}
}

// Dict is a string keyed container, iteration order is never specified
type Dict interface {
	Get(key string) (value interface{}, exists bool)
	Set(key string, value interface{})
	Has(key string) bool
	Del(key string) bool
	Len() int
	Keys() []string
	Values() []interface{}
	Items() []Item
	ForEach(consumer Consumer)
	String() string
}

// Reader is the read half of Dict, implemented by View
type Reader interface {
	Get(key string) (value interface{}, exists bool)
	Has(key string) bool
	Len() int
	Keys() []string
	Values() []interface{}
	Items() []Item
	ForEach(consumer Consumer)
	String() string
}
