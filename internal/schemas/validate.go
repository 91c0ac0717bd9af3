// Package schemas validates profile and job records against the JSON
// Schemas shipped with the binary.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/LAWSA07/ProFel/internal/types"
)

//go:embed profile_record.schema.json job_record.schema.json
var schemaFS embed.FS

// ValidationError reports document-level schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports failures loading or parsing the schema itself.
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

// ValidateProfileRecord checks a raw platform profile payload against the
// embedded profile schema.
func ValidateProfileRecord(record types.RawRecord) error {
	return validateRecord("profile_record.schema.json", record)
}

// ValidateJobRecord checks a raw job posting payload against the embedded
// job schema.
func ValidateJobRecord(record types.RawRecord) error {
	return validateRecord("job_record.schema.json", record)
}

func validateRecord(schemaName string, record types.RawRecord) error {
	schema, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "embedded schema missing", Cause: err}
	}

	document, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record for validation: %w", err)
	}

	return ValidateJSONString(string(schema), string(document), schemaName)
}

// ValidateJSONString validates JSON document content against schema content.
// schemaName is used only in error messages.
func ValidateJSONString(schemaContent, jsonContent, schemaName string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
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
