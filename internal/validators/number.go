package validators

import (
	"encoding/json"
	"fmt"
	"math"
)

// Number validates numeric arguments.
//
// Bounds are inclusive and unbounded unless set. Odd implies Integer.
type Number struct {
	min, max    float64
	onlyInteger bool
	onlyOdd     bool
	def         interface{}
	hasDefault  bool
}

// NewNumber returns an unbounded Number accepting any real value.
func NewNumber() *Number {
	return &Number{min: math.Inf(-1), max: math.Inf(1)}
}

// Min sets the inclusive lower bound.
func (n *Number) Min(v float64) *Number {
	n.min = v
	return n
}

// Max sets the inclusive upper bound.
func (n *Number) Max(v float64) *Number {
	n.max = v
	return n
}

// Between sets both bounds.
func (n *Number) Between(low, high float64) *Number {
	return n.Min(low).Max(high)
}

// Integer restricts the value to integers.
func (n *Number) Integer() *Number {
	n.onlyInteger = true
	return n
}

// Odd restricts the value to odd integers.
func (n *Number) Odd() *Number {
	n.onlyInteger = true
	n.onlyOdd = true
	return n
}

// WithDefault sets the default value.
func (n *Number) WithDefault(v interface{}) *Number {
	n.def = v
	n.hasDefault = true
	return n
}

func (n *Number) Default() (interface{}, bool) {
	return n.def, n.hasDefault
}

func (n *Number) Validate(name string, value interface{}) (interface{}, error) {
	f, ok := toFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalid(name, value, "must be a number")
	}

	if n.onlyInteger && f != math.Trunc(f) {
		if n.onlyOdd {
			return nil, invalid(name, value, "must be an odd integer")
		}
		return nil, invalid(name, value, "must be an integer")
	}
	if n.onlyOdd && math.Mod(f, 2) == 0 {
		return nil, invalid(name, value, "must be an odd integer")
	}

	if f < n.min || f > n.max {
		return nil, invalid(name, value, n.rangeReason())
	}
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if n.onlyInteger && (f >= float64(math.MaxInt) || f < float64(math.MinInt)) {
		return nil, invalid(name, value, "must fit in an int")
	}

	if n.onlyInteger {
		return int(f), nil
	}
	return f, nil
}

func (n *Number) Describe() map[string]interface{} {
	d := map[string]interface{}{"type": "number"}
	if n.onlyInteger {
		d["type"] = "integer"
	}
	if !math.IsInf(n.min, -1) {
		d["minimum"] = n.min
	}
	if !math.IsInf(n.max, 1) {
		d["maximum"] = n.max
	}
	if n.onlyOdd {
		d["description"] = "odd integer"
	}
	if n.hasDefault {
		d["default"] = n.def
	}
	return d
}

func (n *Number) rangeReason() string {
	switch {
	case math.IsInf(n.max, 1):
		return fmt.Sprintf("must be greater than or equal to %s", formatBound(n.min))
	case math.IsInf(n.min, -1):
		return fmt.Sprintf("must be less than or equal to %s", formatBound(n.max))
	default:
		return fmt.Sprintf("must be between %s and %s", formatBound(n.min), formatBound(n.max))
	}
}

func formatBound(f float64) string {
	return fmt.Sprintf("%g", f)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
