package dict

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// View is a read-only façade over a SafeDict. Writes made through the
// underlying dict are visible, nothing can be written through the View.
// A nil View reads as empty.
type View struct {
	d *SafeDict
}

var _ Reader = (*View)(nil)

var emptyDict = &SafeDict{}

func (v *View) dict() *SafeDict {
	if v == nil || v.d == nil {
		return emptyDict
	}
	return v.d
}

func (v *View) Get(key string) (interface{}, bool) {
	return v.dict().Get(key)
}

func (v *View) Has(key string) bool {
	return v.dict().Has(key)
}

func (v *View) Len() int {
	return v.dict().Len()
}

func (v *View) Keys() []string {
	return v.dict().Keys()
}

func (v *View) Values() []interface{} {
	return v.dict().Values()
}

func (v *View) Items() []Item {
	return v.dict().Items()
}

func (v *View) ForEach(consumer Consumer) {
	v.dict().ForEach(consumer)
}

func (v *View) String() string {
	return v.dict().String()
}

func (v *View) MarshalJSON() ([]byte, error) {
	return v.dict().MarshalJSON()
}

func (v *View) MarshalYAML() (interface{}, error) {
	return v.dict().MarshalYAML()
}

func (v *View) UnmarshalJSON([]byte) error {
	return fmt.Errorf("decode into view: %w", ErrImmutableWrite)
}

func (v *View) UnmarshalYAML(*yaml.Node) error {
	return fmt.Errorf("decode into view: %w", ErrImmutableWrite)
}
