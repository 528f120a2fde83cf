package events

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/lifegrid/internal/types"
)

// eventMappingSchema is the JSON Schema every on-disk event file must satisfy.
//
//go:embed events.schema.json
var eventMappingSchema string

// LoadMapping reads an event mapping file, validates it against the embedded
// schema, and decodes it. Source tags are not set here; Merge assigns them.
func LoadMapping(path string) (types.EventMapping, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve event file path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "read failed",
			Cause:   err,
		}
	}

	if err := validateMapping(path, data); err != nil {
		return nil, err
	}

	var mapping types.EventMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "JSON decode failed",
			Cause:   err,
		}
	}

	return mapping, nil
}

// validateMapping checks raw event-file content against the embedded schema.
func validateMapping(path string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(eventMappingSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{
			Path:    path,
			Message: "schema validation could not run",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Path:   path,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
