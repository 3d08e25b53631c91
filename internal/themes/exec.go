package themes

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/jonathan/resumed/internal/logging"
	"github.com/jonathan/resumed/internal/types"
)

// ExecTheme is a theme implemented by an external executable. The document JSON
// is written to its stdin and the markup is read from its stdout.
type ExecTheme struct {
	name string
	path string
}

// NewExecTheme creates a plugin theme backed by the executable at path.
func NewExecTheme(name, path string) *ExecTheme {
	return &ExecTheme{name: name, path: path}
}

// Name returns the theme name.
func (t *ExecTheme) Name() string {
	return t.name
}

// Path returns the plugin executable path.
func (t *ExecTheme) Path() string {
	return t.path
}

// Render runs the plugin with the raw document on stdin.
func (t *ExecTheme) Render(ctx context.Context, doc *types.Resume) (string, error) {
	logger := logging.GetLogger("themes")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.path)
	cmd.Stdin = bytes.NewReader(doc.Raw)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("plugin", t.path).Msg("Running theme plugin")
	if err := cmd.Run(); err != nil {
		return "", &PluginError{Path: t.path, Stderr: stderr.String(), Cause: err}
	}

	return stdout.String(), nil
}
