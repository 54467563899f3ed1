package validators

import (
	"fmt"
	"reflect"
)

// Type validates that a value has Go type T.
type Type[T any] struct {
	def        T
	hasDefault bool
}

// NewType returns a validator for values of type T.
func NewType[T any]() *Type[T] {
	return &Type[T]{}
}

// WithDefault sets the default value.
func (t *Type[T]) WithDefault(v T) *Type[T] {
	t.def = v
	t.hasDefault = true
	return t
}

func (t *Type[T]) Default() (interface{}, bool) {
	if !t.hasDefault {
		return nil, false
	}
	return t.def, true
}

func (t *Type[T]) Validate(name string, value interface{}) (interface{}, error) {
	v, ok := value.(T)
	if !ok {
		var zero T
		return nil, invalid(name, value, fmt.Sprintf("must be of type %T", zero))
	}
	return v, nil
}

func (t *Type[T]) Describe() map[string]interface{} {
	d := map[string]interface{}{"type": jsonType[T]()}
	if t.hasDefault {
		d["default"] = t.def
	}
	return d
}

func jsonType[T any]() string {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	switch rt.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}
