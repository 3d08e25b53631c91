package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/adrg/xdg"
	"github.com/jonathan/resumed/internal/rendering"
	"github.com/jonathan/resumed/internal/themes"
	"github.com/jonathan/resumed/internal/types"
	"github.com/stretchr/testify/require"
)

// staticTheme renders every document to the same markup.
type staticTheme struct {
	name   string
	markup string
}

func (s *staticTheme) Name() string { return s.name }

func (s *staticTheme) Render(context.Context, *types.Resume) (string, error) {
	return s.markup, nil
}

// fakePrinter stands in for headless Chrome.
type fakePrinter struct {
	calls int
	opts  rendering.Options
	err   error
}

func (f *fakePrinter) PrintPDF(_ context.Context, _ string, opts rendering.Options) ([]byte, error) {
	f.calls++
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7\n%fake\n"), nil
}

// setupWorkspace isolates a test in a temporary working directory with empty XDG homes.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("RESUMED_BROWSER_BIN", "")
	t.Setenv("RESUMED_TIMEOUT", "")
	t.Setenv("RESUMED_PAPER_FORMAT", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

// newTestApp returns an app with a single theme "t" rendering "<html></html>".
func newTestApp(t *testing.T, printer rendering.PDFPrinter) *app {
	t.Helper()

	registry := themes.NewRegistry()
	require.NoError(t, registry.Register(&staticTheme{name: "t", markup: "<html></html>"}))
	require.NoError(t, registry.Register(&staticTheme{name: "other", markup: "<html>other</html>"}))

	a := newApp()
	a.registry = registry
	a.writer = rendering.NewWriter(printer)
	return a
}

// executeCLI runs the command tree in-process and captures its output.
func executeCLI(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeResume(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// findBrowser returns a Chrome/Chromium executable or skips the test.
func findBrowser(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping browser tests in short mode")
	}
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "google-chrome-stable", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("Chrome/Chromium not found, skipping PDF test")
	return ""
}
