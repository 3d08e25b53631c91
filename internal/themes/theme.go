package themes

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resumed/internal/logging"
	"github.com/jonathan/resumed/internal/types"
)

// Plugin executables are looked up on PATH with these prefixes.
var pluginPrefixes = []string{"resumed-theme-", "jsonresume-theme-"}

// Theme renders a resume document to markup.
type Theme interface {
	Name() string
	Render(ctx context.Context, doc *types.Resume) (string, error)
}

// Registry maps theme names to themes. Names that are not registered fall back to
// template files and PATH plugins during Resolve.
type Registry struct {
	mu       sync.RWMutex
	themes   map[string]Theme
	lookPath func(string) (string, error)
}

// NewRegistry creates an empty registry that resolves plugins with exec.LookPath.
func NewRegistry() *Registry {
	return &Registry{
		themes:   make(map[string]Theme),
		lookPath: exec.LookPath,
	}
}

// Default returns a registry holding the bundled themes.
func Default() *Registry {
	r := NewRegistry()
	for _, t := range Bundled() {
		if err := r.Register(t); err != nil {
			panic(fmt.Sprintf("failed to register bundled theme: %v", err))
		}
	}
	return r
}

// Register adds a theme under its name. Registering a name twice is an error.
func (r *Registry) Register(t Theme) error {
	name := strings.TrimSpace(t.Name())
	if name == "" {
		return fmt.Errorf("theme name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.themes[name]; exists {
		return fmt.Errorf("theme %q already registered", name)
	}
	r.themes[name] = t
	return nil
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve finds the theme for name. Registered themes win, then template files,
// then plugin executables. Returns *NotFoundError when nothing matches.
func (r *Registry) Resolve(name string) (Theme, error) {
	logger := logging.GetLogger("themes")

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNoTheme
	}

	short := trimPluginPrefix(name)

	r.mu.RLock()
	t, ok := r.themes[name]
	if !ok {
		t, ok = r.themes[short]
	}
	r.mu.RUnlock()
	if ok {
		logger.Debug().Str("theme", name).Msg("Resolved registered theme")
		return t, nil
	}

	if isTemplatePath(name) {
		if _, err := os.Stat(name); err == nil {
			logger.Debug().Str("theme", name).Msg("Resolved template file theme")
			return LoadTemplateFile(name)
		}
	}

	var tried []string
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		tried = append(tried, name)
		if path, err := r.lookPath(name); err == nil {
			logger.Debug().Str("theme", name).Str("path", path).Msg("Resolved plugin by path")
			return NewExecTheme(name, path), nil
		}
		return nil, &NotFoundError{Name: name, Tried: tried}
	}

	for _, prefix := range pluginPrefixes {
		candidate := prefix + short
		tried = append(tried, candidate)
		if path, err := r.lookPath(candidate); err == nil {
			logger.Debug().Str("theme", name).Str("path", path).Msg("Resolved plugin on PATH")
			return NewExecTheme(name, path), nil
		}
	}

	return nil, &NotFoundError{Name: name, Tried: tried}
}

// SelectName picks the theme name for a render: explicit wins over the document's meta.theme.
func SelectName(explicit string, doc *types.Resume) (string, error) {
	if name := strings.TrimSpace(explicit); name != "" {
		return name, nil
	}
	if name := doc.Theme(); name != "" {
		return name, nil
	}
	return "", ErrNoTheme
}

func trimPluginPrefix(name string) string {
	for _, prefix := range pluginPrefixes {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}

func isTemplatePath(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tmpl", ".gohtml", ".html":
		return true
	}
	return false
}
