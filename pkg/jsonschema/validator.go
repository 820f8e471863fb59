// Package jsonschema validates JSON documents against inline JSON Schemas.
// Suite expectations use it to check response body shapes.
package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors is the list of individual schema violations found in a
// document.
type ValidationErrors []error

func (ve ValidationErrors) Error() string {
	parts := make([]string, len(ve))
	for i, err := range ve {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Validate reports whether doc conforms to schema. A malformed schema or a
// document that is not JSON at all is an error, distinct from a document
// that merely fails validation.
func Validate(doc, schema string) (bool, error) {
	compiled, value, err := compile(doc, schema)
	if err != nil {
		return false, err
	}
	return compiled.Validate(value) == nil, nil
}

// ValidateWithErrors is Validate plus the individual violations when the
// document does not conform.
func ValidateWithErrors(doc, schema string) (bool, ValidationErrors) {
	compiled, value, err := compile(doc, schema)
	if err != nil {
		return false, ValidationErrors{err}
	}

	err = compiled.Validate(value)
	if err == nil {
		return true, nil
	}

	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return false, flatten(validationErr)
	}
	return false, ValidationErrors{err}
}

func compile(doc, schema string) (*jsonschema.Schema, interface{}, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, nil, fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid schema: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(doc), &value); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return compiled, value, nil
}

// flatten walks the violation tree into a flat list, leaves included.
func flatten(err *jsonschema.ValidationError) ValidationErrors {
	var out ValidationErrors
	if err.Message != "" {
		out = append(out, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
