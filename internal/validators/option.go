package validators

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Option validates a string against a fixed set of choices.
type Option struct {
	choices      []string
	defaultIndex int
	hasDefault   bool
}

// NewOption returns an Option accepting the given choices.
func NewOption(choices ...string) *Option {
	return &Option{choices: choices}
}

// WithDefault selects the default by its index in the choices. It panics if
// index is out of range.
func (o *Option) WithDefault(index int) *Option {
	if index < 0 || index >= len(o.choices) {
		panic(fmt.Sprintf("validators: option default index %d out of range for %v", index, o.choices))
	}
	o.defaultIndex = index
	o.hasDefault = true
	return o
}

// Choices returns the accepted values in declaration order.
func (o *Option) Choices() []string {
	return append([]string(nil), o.choices...)
}

func (o *Option) Default() (interface{}, bool) {
	if !o.hasDefault {
		return nil, false
	}
	return o.choices[o.defaultIndex], true
}

func (o *Option) Validate(name string, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok || !lo.Contains(o.choices, s) {
		return nil, invalid(name, value, "must be one of: "+strings.Join(o.choices, ", "))
	}
	return s, nil
}

func (o *Option) Describe() map[string]interface{} {
	d := map[string]interface{}{
		"type": "string",
		"enum": o.Choices(),
	}
	if def, ok := o.Default(); ok {
		d["default"] = def
	}
	return d
}
