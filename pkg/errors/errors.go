package errors

import (
	"fmt"
)

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

// ValidationError reports a configuration or preview value outside its domain.
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

// ResolveError indicates a font family could not be turned into a descriptor or face.
type ResolveError struct {
	Family string
	Err    error
}

// NewResolveError constructs a ResolveError for the given family.
func NewResolveError(family string, err error) error {
	return &ResolveError{Family: family, Err: err}
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Family != "" {
		return fmt.Sprintf("font resolve error [%s]: %v", e.Family, e.Err)
	}
	return fmt.Sprintf("font resolve error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while exporting a preview image.
type RenderError struct {
	Target string
	Err    error
}

// NewRenderError constructs a RenderError for the given output target.
func NewRenderError(target string, err error) error {
	return &RenderError{Target: target, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
