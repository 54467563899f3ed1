package validators

import (
	"errors"
	"sort"

	"github.com/samber/lo"

	"github.com/ironsheep/easycv/internal/errs"
)

// Validator checks a single argument value.
type Validator interface {
	// Validate checks value and returns its normalized form. name is used in
	// error reports.
	Validate(name string, value interface{}) (interface{}, error)

	// Default returns the default value and whether one is declared.
	Default() (interface{}, bool)

	// Describe returns a JSON-schema fragment for the argument.
	Describe() map[string]interface{}
}

// Schema maps argument names to their validators.
type Schema map[string]Validator

// Names returns the argument names in sorted order.
func (s Schema) Names() []string {
	names := lo.Keys(s)
	sort.Strings(names)
	return names
}

// Resolve validates args against the schema and returns a new Args holding
// normalized values with defaults filled in. args is not modified.
//
// A nil value counts as not provided.
func (s Schema) Resolve(transform string, args Args) (Args, error) {
	for _, name := range args.names() {
		if _, ok := s[name]; !ok {
			return nil, &errs.InvalidArgumentError{
				Transform: transform,
				Argument:  name,
				Value:     args[name],
				Reason:    "unknown argument",
			}
		}
	}

	resolved := make(Args, len(s))
	var missing []string

	for _, name := range s.Names() {
		v := s[name]

		if raw, ok := args[name]; ok && raw != nil {
			val, err := v.Validate(name, raw)
			if err != nil {
				return nil, withTransform(err, transform)
			}
			resolved[name] = val
			continue
		}

		if def, ok := v.Default(); ok {
			val, err := v.Validate(name, def)
			if err != nil {
				return nil, withTransform(err, transform)
			}
			resolved[name] = val
			continue
		}

		missing = append(missing, name)
	}

	for _, name := range s.Names() {
		m, ok := s[name].(*Method)
		if !ok {
			continue
		}
		selected, _ := resolved[name].(string)
		for _, req := range m.Required(selected) {
			if _, ok := resolved[req]; !ok {
				return nil, &errs.ArgumentNotProvidedError{
					Transform: transform,
					Argument:  req,
					Method:    selected,
				}
			}
		}
	}

	methodSpecific := s.methodSpecific()
	for _, name := range missing {
		if !methodSpecific[name] {
			return nil, &errs.ArgumentNotProvidedError{Transform: transform, Argument: name}
		}
	}

	return resolved, nil
}

// Required lists the arguments a caller must always supply: those without a
// default that no method declares as method-specific.
func (s Schema) Required() []string {
	methodSpecific := s.methodSpecific()
	required := make([]string, 0)
	for _, name := range s.Names() {
		if _, ok := s[name].Default(); ok || methodSpecific[name] {
			continue
		}
		required = append(required, name)
	}
	return required
}

// Describe returns a JSON-schema object describing every argument.
func (s Schema) Describe() map[string]interface{} {
	props := make(map[string]interface{}, len(s))
	for name, v := range s {
		props[name] = v.Describe()
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   s.Required(),
	}
}

func (s Schema) methodSpecific() map[string]bool {
	specific := make(map[string]bool)
	for _, v := range s {
		if m, ok := v.(*Method); ok {
			for _, name := range m.Arguments() {
				specific[name] = true
			}
		}
	}
	return specific
}

// withTransform stamps the transform name on validator errors, which are
// created without one.
func withTransform(err error, transform string) error {
	var argErr *errs.InvalidArgumentError
	if errors.As(err, &argErr) && argErr.Transform == "" {
		argErr.Transform = transform
	}
	var methodErr *errs.InvalidMethodError
	if errors.As(err, &methodErr) && methodErr.Transform == "" {
		methodErr.Transform = transform
	}
	return err
}

func invalid(name string, value interface{}, reason string) error {
	return &errs.InvalidArgumentError{Argument: name, Value: value, Reason: reason}
}
