// Package types provides type definitions for structured data used throughout resumed.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Resume is a resume document as loaded from disk.
// Raw holds the exact bytes that were parsed; Data holds the decoded top-level object,
// or nil when the document is valid JSON but not an object.
// Only the optional meta.theme field is inspected directly.
type Resume struct {
	Raw  json.RawMessage
	Data map[string]any
}

// NewResume decodes raw JSON into a Resume. Any JSON value is accepted; a document
// whose top level is not an object simply has no fields, and so no meta.theme.
func NewResume(raw []byte) (*Resume, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	data, _ := value.(map[string]any)
	return &Resume{Raw: json.RawMessage(raw), Data: data}, nil
}

// Theme returns the trimmed meta.theme value, or "" when absent or not a string.
func (r *Resume) Theme() string {
	if r == nil {
		return ""
	}
	meta, ok := r.Data["meta"].(map[string]any)
	if !ok {
		return ""
	}
	theme, ok := meta["theme"].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(theme)
}

// Typed decodes the document into the JSON Resume view used by bundled themes.
func (r *Resume) Typed() (*JSONResume, error) {
	var jr JSONResume
	if err := json.Unmarshal(r.Raw, &jr); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	return &jr, nil
}
