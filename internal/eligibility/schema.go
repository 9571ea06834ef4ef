package eligibility

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildCriteriaJSONSchema returns the JSON Schema (draft 2020-12 subset)
// constraining scheme criteria payloads to the fixed criterion vocabulary.
func BuildCriteriaJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			KeyAgeMin:          map[string]any{"type": "number", "minimum": 0},
			KeyAgeMax:          map[string]any{"type": "number", "minimum": 0},
			KeyAnnualIncomeMax: map[string]any{"type": "number", "minimum": 0},
			KeyLandHoldingMin:  map[string]any{"type": "number", "minimum": 0},
			KeyCasteAllowed: map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 1,
			},
			KeyGender: map[string]any{"type": "string", "minLength": 1},
		},
	}
}

// ValidateCriteria validates a raw criteria payload against the schema.
func ValidateCriteria(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	b, err := json.Marshal(BuildCriteriaJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("criteria.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("criteria.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal criteria: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("criteria does not match schema: %w", err)
	}
	return nil
}
