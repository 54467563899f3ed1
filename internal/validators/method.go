package validators

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/ironsheep/easycv/internal/errs"
)

// Method validates a method name and records which arguments each method
// requires. Those arguments are only enforced when their method is selected.
type Method struct {
	methods    map[string][]string
	def        string
	hasDefault bool
}

// NewMethod returns a Method for the given method → required arguments map.
func NewMethod(methods map[string][]string) *Method {
	return &Method{methods: methods}
}

// WithDefault sets the default method. It panics if name is not declared.
func (m *Method) WithDefault(name string) *Method {
	if _, ok := m.methods[name]; !ok {
		panic(fmt.Sprintf("validators: default method %q not declared", name))
	}
	m.def = name
	m.hasDefault = true
	return m
}

// Names returns the declared methods in sorted order.
func (m *Method) Names() []string {
	names := lo.Keys(m.methods)
	sort.Strings(names)
	return names
}

// Required returns the arguments method requires.
func (m *Method) Required(method string) []string {
	return m.methods[method]
}

// Arguments returns every argument required by at least one method.
func (m *Method) Arguments() []string {
	args := lo.Uniq(lo.Flatten(lo.Values(m.methods)))
	sort.Strings(args)
	return args
}

func (m *Method) Default() (interface{}, bool) {
	if !m.hasDefault {
		return nil, false
	}
	return m.def, true
}

func (m *Method) Validate(name string, value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, invalid(name, value, "method must be a string")
	}
	if _, ok := m.methods[s]; !ok {
		return nil, &errs.InvalidMethodError{Method: s, Allowed: m.Names()}
	}
	return s, nil
}

func (m *Method) Describe() map[string]interface{} {
	d := map[string]interface{}{
		"type": "string",
		"enum": m.Names(),
	}
	if m.hasDefault {
		d["default"] = m.def
	}
	return d
}
