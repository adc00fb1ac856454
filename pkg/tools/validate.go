package tools

import (
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// FieldError describes a single invalid argument.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every argument that failed validation.
type ValidationError struct {
	Tool   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(parts, "; "))
}

// FieldNames returns the names of the offending fields in definition order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

type compiledParam struct {
	def      ParamDef
	resolved *jsonschema.Resolved
}

// validator checks raw arguments against a ToolDef. Parameter schemas are
// resolved once when the validator is built.
type validator struct {
	tool   string
	params []compiledParam
}

func newValidator(def ToolDef) (*validator, error) {
	v := &validator{tool: def.Name}
	for _, p := range def.Params {
		resolved, err := p.Schema().Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("invalid schema for %s.%s: %w", def.Name, p.Name, err)
		}
		v.params = append(v.params, compiledParam{def: p, resolved: resolved})
	}
	return v, nil
}

// Validate checks args against the parameter schemas of def and returns a new
// map holding only declared parameters, with defaults applied. Any failure is
// reported as a *ValidationError.
func Validate(def ToolDef, args map[string]any) (map[string]any, error) {
	v, err := newValidator(def)
	if err != nil {
		return nil, err
	}
	return v.validate(args)
}

func (v *validator) validate(args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(v.params))
	var fieldErrs []FieldError

	for _, p := range v.params {
		val, present := args[p.def.Name]
		if val == nil {
			present = false
		}

		if !present {
			switch {
			case p.def.Required:
				fieldErrs = append(fieldErrs, FieldError{Field: p.def.Name, Message: "required parameter is missing"})
			case p.def.Default != nil:
				out[p.def.Name] = p.def.Default
			}
			continue
		}

		if err := p.resolved.Validate(val); err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: p.def.Name, Message: describe(p.def, err)})
			continue
		}
		out[p.def.Name] = val
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Tool: v.tool, Fields: fieldErrs}
	}
	return out, nil
}

// describe turns a schema validation error into a short message.
func describe(p ParamDef, err error) string {
	if len(p.Enum) > 0 {
		return fmt.Sprintf("must be one of %s", strings.Join(p.Enum, ", "))
	}
	return fmt.Sprintf("expected %s: %v", p.Type, err)
}
