package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchemaDef is the JSON Schema for the catalog configuration document.
// Cross-field rules (weight sums, known difficulties on modules) are enforced
// in build; the schema covers structure and required fields.
var configSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"modules", "presentation_templates", "assessment_criteria"},
	"properties": map[string]any{
		"modules": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"title", "description", "topics", "hands_on", "difficulty"},
				"properties": map[string]any{
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"topics": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 1,
					},
					"hands_on": map[string]any{"type": "boolean"},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "advanced"},
					},
				},
				"additionalProperties": false,
			},
		},
		"presentation_templates": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"slides"},
				"properties": map[string]any{
					"slides": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string", "minLength": 1},
						"minItems": 1,
					},
				},
				"additionalProperties": false,
			},
		},
		"assessment_criteria": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"understanding", "application", "problem_solving"},
				"properties": map[string]any{
					"understanding":   map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"application":     map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"problem_solving": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateConfig checks raw configuration JSON against the schema.
func validateConfig(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return &ErrInvalidConfig{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compileOnce.Do(func() {
		compiledSchema, compileErr = compileConfigSchema()
	})
	if compileErr != nil {
		return &ErrInvalidConfig{Err: fmt.Errorf("compile schema: %w", compileErr)}
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return &ErrInvalidConfig{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compileConfigSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(configSchemaDef)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://module-config.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
