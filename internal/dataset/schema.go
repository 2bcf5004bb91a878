package dataset

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the shape contract for dataset documents: an object
// whose metadata fields, when present, have the expected types. The body
// beyond the metadata is intentionally unconstrained.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"class":        map[string]any{"type": []any{"string", "number"}},
		"subject":      map[string]any{"type": "string"},
		"chapter_name": map[string]any{"type": "string"},
		"chapter":      map[string]any{"type": "string"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks a parsed document against documentSchema.
func validateDocument(doc any) error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://dataset-document.json", documentSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://dataset-document.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile document schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
