package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ironsheep/easycv/internal/transforms"
	"github.com/ironsheep/easycv/internal/validators"
)

// parseThen parses a --then value: a transform name followed by
// whitespace-separated name=value pairs.
func parseThen(reg *transforms.Registry, value string) (transforms.Step, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return transforms.Step{}, fmt.Errorf("empty step")
	}
	return parseStep(reg, fields[0], fields[1:])
}

func parseStep(reg *transforms.Registry, name string, pairs []string) (transforms.Step, error) {
	args, err := parseArgs(pairs, stringArgs(reg, name))
	if err != nil {
		return transforms.Step{}, fmt.Errorf("%s: %w", name, err)
	}
	return transforms.Step{Name: name, Args: args}, nil
}

// stringArgs reports which arguments of the named transform take plain
// strings. Unknown transforms have none; the pipeline reports them later.
func stringArgs(reg *transforms.Registry, name string) func(arg string) bool {
	t, err := reg.Lookup(name)
	if err != nil {
		return func(string) bool { return false }
	}
	schema := t.Arguments()
	return func(arg string) bool {
		_, ok := schema[arg].(*validators.Type[string])
		return ok
	}
}

func parseArgs(pairs []string, isString func(arg string) bool) (validators.Args, error) {
	args := validators.Args{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not name=value", pair)
		}
		if _, dup := args[key]; dup {
			return nil, fmt.Errorf("argument %q given twice", key)
		}
		v := parseValue(raw)
		if _, str := v.(string); !str && isString != nil && isString(key) {
			v = raw
		}
		args[key] = v
	}
	return args, nil
}

// parseValue decodes raw as JSON, falling back to the literal string.
func parseValue(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
