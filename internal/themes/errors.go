// Package themes resolves theme names to renderers that turn a resume into markup.
package themes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTheme is returned when neither a --theme flag nor meta.theme names a theme.
var ErrNoTheme = errors.New("no theme specified")

// NotFoundError represents a theme name that did not resolve to any known theme
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	if len(e.Tried) > 0 {
		return fmt.Sprintf("theme %q not found (tried %s)", e.Name, strings.Join(e.Tried, ", "))
	}
	return fmt.Sprintf("theme %q not found", e.Name)
}

// LoadError represents a theme that was found but could not be loaded
type LoadError struct {
	Name  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load theme %q: %v", e.Name, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// PluginError represents a theme executable that exited unsuccessfully
type PluginError struct {
	Path   string
	Stderr string
	Cause  error
}

func (e *PluginError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		return fmt.Sprintf("theme plugin %s failed: %v: %s", e.Path, e.Cause, stderr)
	}
	return fmt.Sprintf("theme plugin %s failed: %v", e.Path, e.Cause)
}

func (e *PluginError) Unwrap() error {
	return e.Cause
}
