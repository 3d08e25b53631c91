// Package resume loads resume documents from disk and scaffolds new ones.
package resume

import "fmt"

// FileReadError represents a failure to read a resume file
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read resume file %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a resume file that is not a valid JSON object
type ParseError struct {
	Path   string
	Line   int
	Column int
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse resume %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Cause)
	}
	return fmt.Sprintf("failed to parse resume %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure to write a resume file
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write resume file %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
