// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither flags, environment nor config file set a value.
const (
	DefaultOutput      = "resume.html"
	DefaultPaperFormat = "A4"
	DefaultTimeout     = 60 * time.Second
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Output      string `json:"output,omitempty"`                                                      // Default render output path
	BrowserBin  string `json:"browser_bin,omitempty"`                                                 // Chrome/Chromium executable for PDF output
	Timeout     string `json:"timeout,omitempty" validate:"omitempty,go_duration"`                    // Bound on a PDF browser session, e.g. "45s"
	PaperFormat string `json:"paper_format,omitempty" validate:"omitempty,oneof=A4 a4 Letter letter"` // A4 or Letter
	SchemaPath  string `json:"schema_path,omitempty"`                                                 // Custom JSON Schema for validate
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("go_duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})
	return v
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "resumed", "config.json")
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Resolve loads the config at path, or the default location when path is empty.
// A missing default file yields an empty Config; a missing explicit file is an error.
// Environment overrides are applied before validation.
func Resolve(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if _, err := os.Stat(DefaultPath()); err == nil {
		loaded, err := LoadConfig(DefaultPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' has invalid value %q", fe.Field(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// TimeoutDuration returns the configured timeout, or DefaultTimeout when unset or invalid.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.BrowserBin == "" {
		result.BrowserBin = defaults.BrowserBin
	}
	if result.Timeout == "" {
		result.Timeout = defaults.Timeout
	}
	if result.PaperFormat == "" {
		result.PaperFormat = defaults.PaperFormat
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}

	if result.Output == "" {
		result.Output = DefaultOutput
	}
	if result.PaperFormat == "" {
		result.PaperFormat = DefaultPaperFormat
	}

	return result
}
