package errors

import (
	"fmt"
)

// InvalidColorError reports a string that is not a 6-digit hex color.
type InvalidColorError struct {
	Value  string
	Reason string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value, reason string) error {
	return &InvalidColorError{Value: value, Reason: reason}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid color %q", e.Value)
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures seed validation issues raised in strict mode.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AnalysisError wraps a failure of the image analysis service.
type AnalysisError struct {
	Stage string
	Err   error
}

// NewAnalysisError constructs an AnalysisError for the given stage
// (for example "request" or "decode").
func NewAnalysisError(stage string, err error) error {
	return &AnalysisError{Stage: stage, Err: err}
}

func (e *AnalysisError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage != "" {
		return fmt.Sprintf("analysis error during %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("analysis error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *AnalysisError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError indicates a token set could not be serialized.
type ExportError struct {
	Format  string
	Message string
	Err     error
}

// NewExportError constructs an ExportError for the given format.
func NewExportError(format string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ExportError{Format: format, Message: message, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("export error [%s]: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
