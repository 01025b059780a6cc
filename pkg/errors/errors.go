// Package errors provides structured error types for the maxima tool.
//
// Every failure of a run maps to one machine-readable [Code]. All of them
// are fatal: the CLI reports the message and exits with a nonzero status,
// nothing is retried.
//
// # Error Codes
//
//   - INPUT_OPEN: the input file is missing or unreadable
//   - INPUT_PARSE: the point count or a coordinate pair is malformed
//   - ALLOCATION: the declared point count cannot be held in memory
//   - OUTPUT_OPEN: the output file cannot be created or written
//   - LOG_OPEN: the complexity log cannot be opened or written
//   - INVALID_INPUT: a flag or configuration value is out of range
//   - INTERNAL_ERROR: anything else (plot or graph rendering, ...)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInputParse, "reading point at index %d", i)
//	if errors.Is(err, errors.ErrCodeInputParse) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInputOpen, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure kinds of a run.
const (
	ErrCodeInputOpen  Code = "INPUT_OPEN"
	ErrCodeInputParse Code = "INPUT_PARSE"
	ErrCodeAllocation Code = "ALLOCATION"
	ErrCodeOutputOpen Code = "OUTPUT_OPEN"
	ErrCodeLogOpen    Code = "LOG_OPEN"

	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message, followed by the cause if present.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
