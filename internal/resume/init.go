package resume

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/jonathan/resumed/internal/logging"
)

//go:embed sample.json
var sample []byte

// Sample returns a copy of the canonical sample resume.
func Sample() []byte {
	out := make([]byte, len(sample))
	copy(out, sample)
	return out
}

// Init writes the sample resume to path, replacing any existing file.
func Init(path string) error {
	logger := logging.GetLogger("resume")

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(path, sample, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	logger.Info().Str("path", path).Msg("Wrote sample resume")
	return nil
}
