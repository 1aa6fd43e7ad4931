package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Validator checks Go values against JSON schemas.
// It caches compiled schemas by their JSON text.
type Validator struct {
	cache sync.Map // map[string]*gojsonschema.Schema
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks doc against schemaData. The schema can be a JSON string, a
// map[string]any or a struct; doc is any value encoding/json can marshal.
func (v *Validator) Validate(schemaData any, doc any) error {
	s, err := v.compile(schemaData)
	if err != nil {
		return fmt.Errorf("invalid schema definition: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation execution failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed:\n- %s", dumpErrors(errs))
}

func (v *Validator) compile(schemaData any) (*gojsonschema.Schema, error) {
	var key string
	switch s := schemaData.(type) {
	case string:
		key = s
	default:
		b, err := json.Marshal(schemaData)
		if err != nil {
			return nil, err
		}
		key = string(b)
	}

	if val, ok := v.cache.Load(key); ok {
		return val.(*gojsonschema.Schema), nil
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(key))
	if err != nil {
		return nil, err
	}
	v.cache.Store(key, compiled)
	return compiled, nil
}

// dumpErrors keeps the first three messages.
func dumpErrors(errs []string) string {
	if len(errs) == 0 {
		return ""
	}
	truncated := ""
	if len(errs) > 3 {
		truncated = fmt.Sprintf("\n... and %d more", len(errs)-3)
		errs = errs[:3]
	}
	return strings.Join(errs, "\n- ") + truncated
}
