package validators

import (
	"sort"

	"github.com/samber/lo"
)

// Args holds argument values keyed by name. After Schema.Resolve the values
// are normalized and the typed accessors below can be used without checks.
type Args map[string]interface{}

// Has reports whether name is present.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Int returns name as an int. Floats are truncated.
func (a Args) Int(name string) int {
	switch v := a[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Float returns name as a float64.
func (a Args) Float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// String returns name as a string.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns name as a bool.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// List returns name as a normalized list.
func (a Args) List(name string) []interface{} {
	l, _ := a[name].([]interface{})
	return l
}

// Ints returns a list of numbers as ints.
func (a Args) Ints(name string) []int {
	return lo.Map(a.List(name), func(v interface{}, _ int) int {
		return Args{"v": v}.Int("v")
	})
}

// Floats returns a list of numbers as float64s.
func (a Args) Floats(name string) []float64 {
	return lo.Map(a.List(name), func(v interface{}, _ int) float64 {
		return Args{"v": v}.Float("v")
	})
}

// Points returns a list of [x, y] pairs.
func (a Args) Points(name string) [][2]float64 {
	return lo.Map(a.List(name), func(v interface{}, _ int) [2]float64 {
		pair, _ := v.([]interface{})
		var p [2]float64
		for i := 0; i < len(pair) && i < 2; i++ {
			p[i] = Args{"v": pair[i]}.Float("v")
		}
		return p
	})
}

// Clone returns a shallow copy.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (a Args) names() []string {
	names := lo.Keys(a)
	sort.Strings(names)
	return names
}
