// Package errors provides structured error types for pkgscore.
//
// Every error that crosses a package boundary carries a [Code] so the CLI
// can decide how to react without string matching:
//
//   - Input errors (INVALID_INPUT, INVALID_URL, FILE_NOT_FOUND) abort the run.
//   - Resolution misses (UNSUPPORTED_HOST, UNRESOLVABLE) skip one URL.
//   - Metric failures (NETWORK_ERROR, NOT_FOUND, INVALID_RESPONSE) zero one
//     sub-score.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidURL, "line %d: %q is not an absolute URL", n, line)
//	if errors.Is(err, errors.ErrCodeInvalidURL) {
//	    // fatal
//	}
//
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidURL    Code = "INVALID_URL"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Resolution misses
	ErrCodeUnsupportedHost Code = "UNSUPPORTED_HOST"
	ErrCodeUnresolvable    Code = "UNRESOLVABLE"

	// Remote data errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeNetwork         Code = "NETWORK_ERROR"
	ErrCodeInvalidResponse Code = "INVALID_RESPONSE"
	ErrCodeRateLimited     Code = "RATE_LIMITED"

	// Authentication errors
	ErrCodeUnauthorized Code = "UNAUTHORIZED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It walks the whole chain, so an outer error with a different code does not
// hide an inner match.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err belongs to the input error class that must
// abort the whole run.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidURL, ErrCodeInvalidConfig,
		ErrCodeFileNotFound, ErrCodeUnauthorized:
		return true
	}
	return false
}

// IsMiss reports whether err is a resolution miss. Misses skip one URL.
func IsMiss(err error) bool {
	return Is(err, ErrCodeUnsupportedHost) || Is(err, ErrCodeUnresolvable)
}
