package dict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Item
	}{
		{name: "empty", input: "", want: []Item{}},
		{name: "yaml", input: "a: 1\ntoString: x\n", want: []Item{{Key: "a", Value: 1}, {Key: "toString", Value: "x"}}},
		{name: "json", input: `{"__proto__": true, "": null}`, want: []Item{{Key: "__proto__", Value: true}, {Key: "", Value: nil}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decode([]byte(tc.input))
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, d.Items())
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{"- a\n- b\n", "hello", "42", "1: a\n", "{a: [}", "a:\n  1: x\n", "a:\n  - b:\n      true: c\n"} {
		t.Run(input, func(t *testing.T) {
			_, err := Decode([]byte(input))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestMarshalJSONOnlyLogicalKeys(t *testing.T) {
	d := MakeSafeDictFrom(map[string]interface{}{"a": 1, "constructor": "c"})
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1, "constructor": "c"}`, string(data))

	empty, err := json.Marshal(MakeSafeDict())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}

func TestMarshalYAML(t *testing.T) {
	d := MakeSafeDictFrom(map[string]interface{}{"b": 2, "a": 1})
	data, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", string(data))
}

func TestUnmarshalIntoZeroValue(t *testing.T) {
	var fromJSON SafeDict
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "toString": "x"}`), &fromJSON))
	val, exists := fromJSON.Get("a")
	assert.True(t, exists)
	assert.Equal(t, float64(1), val)

	var fromYAML SafeDict
	require.NoError(t, yaml.Unmarshal([]byte("a: 1\n"), &fromYAML))
	val, exists = fromYAML.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 1, val)

	var nested struct {
		Data *SafeDict `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"data": {"k": "v"}}`), &nested))
	assert.ElementsMatch(t, []string{"k"}, nested.Data.Keys())
}

func TestUnmarshalRejectsNonMapping(t *testing.T) {
	var d SafeDict
	err := json.Unmarshal([]byte(`[1, 2]`), &d)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, d.Len())
}

func TestUnmarshalIntoConstructedRejected(t *testing.T) {
	d := MakeSafeDictFrom(map[string]interface{}{"a": 1})

	err := json.Unmarshal([]byte(`{"foo": "bar"}`), d)
	assert.ErrorIs(t, err, ErrImmutableWrite)

	err = yaml.Unmarshal([]byte("foo: bar\n"), d)
	assert.ErrorIs(t, err, ErrImmutableWrite)

	assert.ElementsMatch(t, []Item{{Key: "a", Value: 1}}, d.Items())
}

func TestDecodeNestedToJSON(t *testing.T) {
	d, err := Decode([]byte("a:\n  b: 1\n  list:\n    - c: d\n    - 2\n"))
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"b": 1, "list": [{"c": "d"}, 2]}}`, string(data))
}

func TestUnmarshalYAMLRejectsNestedNonStringKey(t *testing.T) {
	var d SafeDict
	err := yaml.Unmarshal([]byte("a:\n  1: x\n"), &d)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, d.Len())
}
