package shell

import (
	"path"
	"sort"

	"github.com/xuning888/safedict/pkg/datastruct/dict"
	"gopkg.in/yaml.v3"
)

// execGet get key
func execGet(d dict.Dict, args []token) (Reply, error) {
	val, exists := d.Get(args[0].text)
	if !exists {
		return MakeNullReply(), nil
	}
	return MakeValueReply(val), nil
}

// execSet set key value
func execSet(d dict.Dict, args []token) (Reply, error) {
	d.Set(args[0].text, parseValue(args[1]))
	return MakeOkReply(), nil
}

// execHas has key
func execHas(d dict.Dict, args []token) (Reply, error) {
	if d.Has(args[0].text) {
		return MakeIntReply(1), nil
	}
	return MakeIntReply(0), nil
}

// execDel del key [key...]
func execDel(d dict.Dict, args []token) (Reply, error) {
	deleted := 0
	for _, arg := range args {
		if d.Del(arg.text) {
			deleted++
		}
	}
	return MakeIntReply(int64(deleted)), nil
}

// execKeys keys [pattern], without a pattern every key is listed
func execKeys(d dict.Dict, args []token) (Reply, error) {
	if len(args) > 1 {
		return nil, wrongArgs("keys")
	}
	keys := d.Keys()
	matched := keys
	if len(args) == 1 {
		pattern := args[0].text
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, ErrInvalidPattern
		}
		matched = make([]string, 0, len(keys))
		for _, key := range keys {
			if ok, _ := path.Match(pattern, key); ok {
				matched = append(matched, key)
			}
		}
	}
	sort.Strings(matched)
	lines := make([]string, len(matched))
	for i, key := range matched {
		lines[i] = quote(key)
	}
	return MakeMultiReply(lines), nil
}

// execValues values
func execValues(d dict.Dict, _ []token) (Reply, error) {
	values := d.Values()
	lines := make([]string, len(values))
	for i, val := range values {
		lines[i] = formatValue(val)
	}
	sort.Strings(lines)
	return MakeMultiReply(lines), nil
}

// execItems items
func execItems(d dict.Dict, _ []token) (Reply, error) {
	items := d.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Key < items[j].Key
	})
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = quote(item.Key) + " => " + formatValue(item.Value)
	}
	return MakeMultiReply(lines), nil
}

// execLen len
func execLen(d dict.Dict, _ []token) (Reply, error) {
	return MakeIntReply(int64(d.Len())), nil
}

// execDump dump
func execDump(d dict.Dict, _ []token) (Reply, error) {
	return MakeStatusReply(d.String()), nil
}

// parseValue reads an unquoted argument as a plain YAML scalar such as 10,
// true or null. Quoted arguments, block scalars and anything that parses to
// a collection or to no node at all stay strings.
func parseValue(arg token) interface{} {
	if arg.quoted || arg.text == "" {
		return arg.text
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(arg.text), &doc); err != nil || len(doc.Content) != 1 {
		return arg.text
	}
	node := doc.Content[0]
	if node.Kind != yaml.ScalarNode || node.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 {
		return arg.text
	}
	var val interface{}
	if err := node.Decode(&val); err != nil {
		return arg.text
	}
	return val
}
