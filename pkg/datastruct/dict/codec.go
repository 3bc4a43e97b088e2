package dict

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode builds a SafeDict from a YAML document, JSON is accepted as well.
// An empty document gives an empty dict. A root other than a mapping, or a
// mapping key at any depth that is not a string, is ErrInvalidArgument.
func Decode(data []byte) (*SafeDict, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	raw, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	return FromValue(raw)
}

// normalize turns decoded YAML mappings into map[string]interface{} so the
// result encodes as JSON as well
func normalize(val interface{}) (interface{}, error) {
	switch v := val.(type) {
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key %v is %T, want string", ErrInvalidArgument, k, k)
			}
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			result[key] = n
		}
		return result, nil
	case map[string]interface{}:
		for k, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			v[k] = n
		}
		return v, nil
	case []interface{}:
		for i, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			v[i] = n
		}
		return v, nil
	}
	return val, nil
}

func (d *SafeDict) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.snapshot())
}

func (d *SafeDict) MarshalYAML() (interface{}, error) {
	return d.snapshot(), nil
}

// UnmarshalJSON only populates a zero-value SafeDict. Decoding over a
// constructed one would bypass Set and is rejected.
func (d *SafeDict) UnmarshalJSON(data []byte) error {
	if d.m != nil {
		return fmt.Errorf("decode into constructed dict: %w", ErrImmutableWrite)
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return d.fill(raw)
}

func (d *SafeDict) UnmarshalYAML(value *yaml.Node) error {
	if d.m != nil {
		return fmt.Errorf("decode into constructed dict: %w", ErrImmutableWrite)
	}
	var raw interface{}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	raw, err := normalize(raw)
	if err != nil {
		return err
	}
	return d.fill(raw)
}

func (d *SafeDict) snapshot() map[string]interface{} {
	result := make(map[string]interface{}, d.Len())
	for k, v := range d.m {
		result[k] = v
	}
	return result
}
