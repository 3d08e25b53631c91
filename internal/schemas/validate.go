// Package schemas provides JSON Schema validation for resume documents.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/resumed/internal/logging"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

var (
	compiledOnce sync.Once
	compiled     *gojsonschema.Schema
	compileErr   error
)

// ResumeSchema returns the embedded JSON Resume schema document.
func ResumeSchema() []byte {
	out := make([]byte, len(resumeSchema))
	copy(out, resumeSchema)
	return out
}

// ValidationError represents a schema validation failure with one entry per violation,
// in the order the validator reported them.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific path
type FieldError struct {
	Path    string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// DocumentError represents a document that could not be read or parsed before validation
type DocumentError struct {
	Path  string
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("failed to load document %s: %v", e.Path, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Path, err.Message))
	}
	return sb.String()
}

// ValidateFile validates the resume document at path against the embedded JSON Resume schema.
// It returns nil when the document conforms, *ValidationError when it violates the schema,
// and any other error when the document or schema could not be loaded.
func ValidateFile(path string) error {
	logger := logging.GetLogger("schemas")

	schema, err := resumeSchemaCompiled()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return &DocumentError{Path: path, Cause: err}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return &DocumentError{Path: path, Cause: err}
	}

	if result.Valid() {
		logger.Debug().Str("path", path).Msg("Document is valid")
		return nil
	}

	verr := buildValidationError(result)
	logger.Debug().Str("path", path).Int("violations", len(verr.Errors)).Msg("Document failed validation")
	return verr
}

func resumeSchemaCompiled() (*gojsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{
				Path:    "(embedded resume schema)",
				Message: "schema compilation failed",
				Cause:   compileErr,
			}
		}
	})
	return compiled, compileErr
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return &DocumentError{Path: jsonPath, Cause: err}
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(schemaAbsPath)))
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaAbsPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(jsonAbsPath)))
	if err != nil {
		return &DocumentError{Path: jsonPath, Cause: err}
	}

	if result.Valid() {
		return nil
	}

	return buildValidationError(result)
}

func buildValidationError(result *gojsonschema.Result) *ValidationError {
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Path:    field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
