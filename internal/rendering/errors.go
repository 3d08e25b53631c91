// Package rendering turns a resume into markup through a theme and writes it as HTML or PDF.
package rendering

import (
	"fmt"
	"time"
)

// RenderError represents a theme that failed to produce markup
type RenderError struct {
	Theme string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error: theme %s: %v", e.Theme, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// OutputError represents a failure to write the rendered artifact
type OutputError struct {
	Path    string
	Message string
	Cause   error
}

func (e *OutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("output error: %s: %s", e.Path, e.Message)
}

func (e *OutputError) Unwrap() error {
	return e.Cause
}

// BrowserError represents a headless browser failure while printing a PDF
type BrowserError struct {
	Message string
	Cause   error
}

func (e *BrowserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("browser error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("browser error: %s", e.Message)
}

func (e *BrowserError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents a browser session that did not finish within its time bound,
// typically because the page never reached network idleness
type TimeoutError struct {
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for the page to finish loading", e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}
