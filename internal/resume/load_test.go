package resume

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	err := os.WriteFile(path, []byte(`{"basics": {"name": "Ada"}, "meta": {"theme": "minimal"}}`), 0644)
	require.NoError(t, err)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", r.Theme())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	var readErr *FileReadError
	assert.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	err := os.WriteFile(path, []byte("{\n  \"basics\": {\n    \"name\": \"Ada\",\n  }\n}"), 0644)
	require.NoError(t, err)

	_, err = Load(path)
	assert.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Equal(t, 4, parseErr.Line)
	assert.Contains(t, err.Error(), "line 4")
}

func TestLoad_NonObjectDocuments(t *testing.T) {
	for _, doc := range []string{`null`, `[1, 2]`, `"just a string"`, `42`} {
		t.Run(doc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "resume.json")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

			r, err := Load(path)
			require.NoError(t, err)
			assert.Nil(t, r.Data)
			assert.Equal(t, "", r.Theme())
		})
	}
}

func TestLoad_ErrorPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("{\n  x\n}"), 0644))

	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, 3, parseErr.Column)
}

func TestPosition(t *testing.T) {
	content := []byte("ab\ncd\nef")

	line, col := position(content, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	// SyntaxError offsets count the bytes read through the bad byte
	line, col = position(content, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = position(content, 5)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, _ = position(content, 100)
	assert.Equal(t, 3, line)
}

func TestInit_WritesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newfile.json")

	require.NoError(t, Init(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(content, &doc))
	for _, key := range []string{"basics", "work", "education", "skills", "meta"} {
		assert.Contains(t, doc, key)
	}

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "classic", r.Theme())
}

func TestInit_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0644))

	require.NoError(t, Init(path))
	require.NoError(t, Init(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Sample(), content)
}

func TestInit_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "resume.json")

	require.NoError(t, Init(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestInit_WriteError(t *testing.T) {
	dir := t.TempDir()

	err := Init(dir)
	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestSample_IsCopy(t *testing.T) {
	s := Sample()
	s[0] = 'X'
	assert.NotEqual(t, s[0], Sample()[0])
}
