package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResumeSchema_IsValidJSON(t *testing.T) {
	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(ResumeSchema(), &schemaObj))

	assert.Equal(t, "object", schemaObj["type"])
	assert.Contains(t, schemaObj, "properties")
}

func TestResumeSchema_Compiles(t *testing.T) {
	schema, err := resumeSchemaCompiled()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}

func TestValidateFile_Conformant(t *testing.T) {
	path := writeFile(t, "resume.json", `{
		"basics": {"name": "Ada Lovelace", "email": "ada@example.com"},
		"work": [{"name": "Engines Ltd", "startDate": "1842-09", "highlights": ["Notes on the engine"]}],
		"meta": {"theme": "classic"}
	}`)

	assert.NoError(t, ValidateFile(path))
}

func TestValidateFile_EmptyObject(t *testing.T) {
	path := writeFile(t, "resume.json", `{}`)
	assert.NoError(t, ValidateFile(path))
}

func TestValidateFile_Violations(t *testing.T) {
	path := writeFile(t, "resume.json", `{
		"basics": {"name": 42, "email": "not-an-email"},
		"work": [{"startDate": "last year"}]
	}`)

	err := ValidateFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 3)

	paths := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		paths = append(paths, fe.Path)
		assert.NotEmpty(t, fe.Message)
	}
	assert.Contains(t, paths, "basics.name")
	assert.Contains(t, paths, "basics.email")
	assert.Contains(t, paths, "work.0.startDate")
}

func TestValidateFile_UnknownTopLevelField(t *testing.T) {
	path := writeFile(t, "resume.json", `{"hobbies": ["chess"]}`)

	err := ValidateFile(path)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Path)
	assert.Contains(t, validationErr.Errors[0].Message, "hobbies")
}

func TestValidateFile_MissingFile(t *testing.T) {
	err := ValidateFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))

	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateFile_MalformedJSON(t *testing.T) {
	path := writeFile(t, "resume.json", `{ invalid json }`)

	err := ValidateFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Path: "basics.name", Message: "Invalid type"},
		{Path: "(root)", Message: "Additional property x is not allowed"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "1. basics.name: Invalid type")
	assert.Contains(t, msg, "2. (root): Additional property x is not allowed")
}

func TestValidateJSON_CustomSchema(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", `{
		"type": "object",
		"required": ["basics"],
		"properties": {"basics": {"type": "object"}}
	}`)

	valid := writeFile(t, "valid.json", `{"basics": {}}`)
	assert.NoError(t, ValidateJSON(schemaPath, valid))

	invalid := writeFile(t, "invalid.json", `{"work": []}`)
	err := ValidateJSON(schemaPath, invalid)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Path)
	assert.Contains(t, validationErr.Errors[0].Message, "basics")
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeFile(t, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nonexistent_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", `{"type": "object"}`)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nonexistent.json"))
	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestValidateJSON_BrokenSchema(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", `{"type": 12}`)
	jsonPath := writeFile(t, "doc.json", `{}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
