package dict

import (
	"fmt"
	"reflect"
)

// FromValue builds a SafeDict from any key/value shaped source: nil, a map
// with string keys, a map[interface{}]interface{} holding only string keys,
// []Item or another dict. Anything else is ErrInvalidArgument.
func FromValue(src interface{}) (*SafeDict, error) {
	d := &SafeDict{}
	if err := d.fill(src); err != nil {
		return nil, err
	}
	return d, nil
}

// fill copies src into d, d is left untouched when src is rejected
func (d *SafeDict) fill(src interface{}) error {
	entries, err := collect(src)
	if err != nil {
		return err
	}
	m := d.store()
	for k, v := range entries {
		m[k] = v
	}
	return nil
}

func collect(src interface{}) (map[string]interface{}, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return s, nil
	case *SafeDict:
		if s == nil {
			return nil, nil
		}
		return s.m, nil
	case *View:
		if s == nil || s.d == nil {
			return nil, nil
		}
		return s.d.m, nil
	case []Item:
		result := make(map[string]interface{}, len(s))
		for _, item := range s {
			result[item.Key] = item.Value
		}
		return result, nil
	case Reader:
		result := make(map[string]interface{}, s.Len())
		s.ForEach(func(key string, val interface{}) bool {
			result[key] = val
			return true
		})
		return result, nil
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(s))
		for k, v := range s {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key %v is %T, want string", ErrInvalidArgument, k, k)
			}
			result[key] = v
		}
		return result, nil
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: cannot build dict from %T", ErrInvalidArgument, src)
	}
	result := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		result[iter.Key().String()] = iter.Value().Interface()
	}
	return result, nil
}
