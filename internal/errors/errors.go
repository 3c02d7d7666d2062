// Package errors provides a lightweight structured error type (GraphDotError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a graphdot error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Export and processing errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// GraphDotError is a structured error with category and context
type GraphDotError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for GraphDotError
type ContextFields map[string]any

// Error implements the error interface
func (e *GraphDotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *GraphDotError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *GraphDotError) WithContext(key string, value any) *GraphDotError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new GraphDotError
func New(category ErrorCategory, severity ErrorSeverity, message string) *GraphDotError {
	return &GraphDotError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new GraphDotError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *GraphDotError {
	return &GraphDotError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// NewValidationError creates a fatal validation error
func NewValidationError(message string) *GraphDotError {
	return New(CategoryValidation, SeverityFatal, message)
}

// NewConfigError creates a fatal configuration error wrapping err
func NewConfigError(message string, err error) *GraphDotError {
	return Wrap(err, CategoryConfig, SeverityFatal, message)
}

// NewRenderError creates a render error wrapping err
func NewRenderError(message string, err error) *GraphDotError {
	return Wrap(err, CategoryRender, SeverityError, message)
}

// NewFileSystemError creates a filesystem error wrapping err
func NewFileSystemError(message string, err error) *GraphDotError {
	return Wrap(err, CategoryFileSystem, SeverityError, message)
}
