package config

import (
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeNotRoot         = "NOT_ROOT"
	ErrCodePreflightFailed = "PREFLIGHT_FAILED"
	ErrCodeStepFailed      = "STEP_FAILED"
	ErrCodeConfigParse     = "CONFIG_PARSE"
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
	ErrCodeScaffoldFailed  = "SCAFFOLD_FAILED"
	ErrCodeUnsupportedOS   = "UNSUPPORTED_OS"
)

// UserError represents a user-friendly error with actionable suggestions.
type UserError struct {
	Code       string // Error code for categorization (e.g., "NOT_ROOT")
	Message    string // User-friendly error message
	Context    string // Command, file path, or other location context
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the formatted error message.
func (e *UserError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, " (at %s)", e.Context)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain support.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *UserError) Is(target error) bool {
	if t, ok := target.(*UserError); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns a fully formatted error with all details.
func (e *UserError) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}
	if e.Underlying != nil {
		fmt.Fprintf(&b, "\n  Caused by: %v", e.Underlying)
	}
	return b.String()
}

// NewUserError creates a UserError with the given code and message.
func NewUserError(code, message string) *UserError {
	return &UserError{Code: code, Message: message}
}

// WithContext returns a copy with location context attached.
func (e *UserError) WithContext(ctx string) *UserError {
	clone := *e
	clone.Context = ctx
	return &clone
}

// WithSuggestion returns a copy with an actionable suggestion attached.
func (e *UserError) WithSuggestion(s string) *UserError {
	clone := *e
	clone.Suggestion = s
	return &clone
}

// WithUnderlying returns a copy wrapping the given error.
func (e *UserError) WithUnderlying(err error) *UserError {
	clone := *e
	clone.Underlying = err
	return &clone
}
