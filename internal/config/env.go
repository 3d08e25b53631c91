package config

import "os"

// Environment variables that override config file values.
const (
	EnvBrowserBin  = "RESUMED_BROWSER_BIN"
	EnvTimeout     = "RESUMED_TIMEOUT"
	EnvPaperFormat = "RESUMED_PAPER_FORMAT"
)

// ApplyEnv overrides fields with any RESUMED_* environment variables that are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBrowserBin); v != "" {
		c.BrowserBin = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvPaperFormat); v != "" {
		c.PaperFormat = v
	}
}
