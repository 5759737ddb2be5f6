// Package errors provides structured errors carrying a machine-readable code,
// a human-readable message, an optional cause and optional context values.
//
// Codes are string based so they read well in logs and serialize naturally:
//
//	err := errors.NewWithContext(errors.ErrCodeNotFound,
//	    "environment variable TARGET not set", map[string]any{"variable": "TARGET"})
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // ...
//	}
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a specific error condition.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested value does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidRequest indicates the provided input is invalid or malformed.
	ErrCodeInvalidRequest ErrorCode = "INVALID_INPUT"

	// ErrCodeInternal indicates an internal error occurred.
	ErrCodeInternal ErrorCode = "INTERNAL"

	// ErrCodeTimeout indicates an operation exceeded its time limit or was cancelled.
	ErrCodeTimeout ErrorCode = "TIMEOUT"

	// ErrCodeUnavailable indicates a dependency is not available.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"

	// ErrCodeMethodNotAllowed indicates the HTTP method is not supported by the route.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"

	// ErrCodeRateLimitExceeded indicates the caller exceeded the request rate limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
)

// String returns the string representation of the ErrorCode.
func (c ErrorCode) String() string {
	return string(c)
}

// StructuredError is an error with a code, message, cause and context.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError without a cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext creates a StructuredError without a cause but with context values.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap creates a StructuredError wrapping cause.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext creates a StructuredError wrapping cause with context values.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// CodeOf returns the code of the first StructuredError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// HasCode reports whether the first StructuredError in err's chain has code.
func HasCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
