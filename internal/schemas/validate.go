// Package schemas provides JSON Schema validation for the lexicon
// configuration and the generation adapter's response envelope.
// Schemas are embedded at compile time and compiled once per process.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(parts, "; "))
}

// SchemaLoadError represents errors loading or parsing a schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateLexicon checks raw lexicon JSON against the lexicon schema
func ValidateLexicon(data []byte) error {
	return validateAgainst("lexicon.schema.json", lexiconSchemaJSON, data)
}

// ValidateGeneratorResponse checks a generation adapter response against
// the response envelope schema. A failure here is a generation failure,
// not a validation failure: the attempt is retried.
func ValidateGeneratorResponse(data []byte) error {
	return validateAgainst("generator_response.schema.json", generatorResponseSchemaJSON, data)
}

func validateAgainst(name string, schema []byte, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    name,
			Message: "schema or document could not be processed",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
