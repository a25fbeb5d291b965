package errorwrapper

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the application.
var (
	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")
	// ErrConnection indicates the remote host could not be reached.
	ErrConnection = errors.New("connection error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfiguration indicates configuration issues.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information.
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message.
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NetworkError represents a categorized network failure for a specific URL.
// Category is one of the probe failure categories surfaced in the output
// (ConnectionError, Timeout, OtherError).
type NetworkError struct {
	URL      string
	Category string
	Attempts int
	Wrapped  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s (failed after %d retries)", e.Category, e.Attempts)
}

func (e *NetworkError) Unwrap() error {
	return e.Wrapped
}

// NewNetworkError creates a new network error.
func NewNetworkError(url, category string, attempts int, wrapped error) *NetworkError {
	return &NetworkError{URL: url, Category: category, Attempts: attempts, Wrapped: wrapped}
}

// HTTPError represents an unexpected HTTP-level failure.
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("HTTP %d error for URL '%s': %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d error: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTP error with URL context.
func NewHTTPError(statusCode int, url, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, URL: url, Message: message}
}
