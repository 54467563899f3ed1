package validators

import (
	"fmt"
	"reflect"
)

// List validates a slice or array whose elements all satisfy elem.
type List struct {
	elem       Validator
	length     int
	minLength  int
	def        interface{}
	hasDefault bool
}

// NewList returns a List of any length.
func NewList(elem Validator) *List {
	return &List{elem: elem, length: -1}
}

// Length requires exactly n elements.
func (l *List) Length(n int) *List {
	l.length = n
	return l
}

// MinLength requires at least n elements.
func (l *List) MinLength(n int) *List {
	l.minLength = n
	return l
}

// WithDefault sets the default list.
func (l *List) WithDefault(v interface{}) *List {
	l.def = v
	l.hasDefault = true
	return l
}

func (l *List) Default() (interface{}, bool) {
	return l.def, l.hasDefault
}

func (l *List) Validate(name string, value interface{}) (interface{}, error) {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, invalid(name, value, "must be a list")
	}

	n := rv.Len()
	if l.length >= 0 && n != l.length {
		return nil, invalid(name, value, fmt.Sprintf("must have exactly %d elements", l.length))
	}
	if n < l.minLength {
		return nil, invalid(name, value, fmt.Sprintf("must have at least %d elements", l.minLength))
	}

	out := make([]interface{}, n)
	for i := 0; i < n; i++ {
		v, err := l.elem.Validate(fmt.Sprintf("%s[%d]", name, i), rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (l *List) Describe() map[string]interface{} {
	d := map[string]interface{}{
		"type":  "array",
		"items": l.elem.Describe(),
	}
	if l.length >= 0 {
		d["minItems"] = l.length
		d["maxItems"] = l.length
	} else if l.minLength > 0 {
		d["minItems"] = l.minLength
	}
	if l.hasDefault {
		d["default"] = l.def
	}
	return d
}
