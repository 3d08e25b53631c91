package main

import (
	"github.com/jonathan/resumed/internal/config"
	"github.com/jonathan/resumed/internal/rendering"
	"github.com/jonathan/resumed/internal/themes"
)

// app holds the collaborators shared by every command.
type app struct {
	registry   *themes.Registry
	writer     *rendering.Writer
	cfg        *config.Config
	configPath string
	verbosity  int
}

// loadConfig resolves the config file and environment overrides for commands that use them.
func (a *app) loadConfig() error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func newApp() *app {
	return &app{
		registry: themes.Default(),
		writer:   rendering.NewWriter(nil),
		cfg:      &config.Config{},
	}
}

// handledError marks a failure that has already been reported to the user.
// main exits non-zero without printing it again.
type handledError struct {
	err error
}

func (e *handledError) Error() string {
	return e.err.Error()
}

func (e *handledError) Unwrap() error {
	return e.err
}

func handled(err error) error {
	return &handledError{err: err}
}
