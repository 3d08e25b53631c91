package resume

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"github.com/jonathan/resumed/internal/logging"
	"github.com/jonathan/resumed/internal/types"
)

// DefaultFilename is used when no resume path is given on the command line.
const DefaultFilename = "resume.json"

// Load reads the file at path and parses it into a Resume.
func Load(path string) (*types.Resume, error) {
	logger := logging.GetLogger("resume")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}

	r, err := types.NewResume(content)
	if err != nil {
		perr := &ParseError{Path: path, Cause: err}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			perr.Line, perr.Column = position(content, syntaxErr.Offset)
		}
		return nil, perr
	}

	logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Loaded resume")
	return r, nil
}

// position converts a byte offset into a 1-based line and column.
func position(content []byte, offset int64) (int, int) {
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	before := content[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	column := int(offset) - bytes.LastIndexByte(before, '\n') - 1
	if column < 1 {
		column = 1
	}
	return line, column
}
