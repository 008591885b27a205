// Package domainerrors provides coded domain errors.
//
// Services and value types return these so callers can branch on the error
// code (via HasCode) instead of matching message strings. Parse errors attach
// the offending input with WithValue for diagnostic display.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

// Domain error codes.
const (
	// CodeInvalidFormat: input text or value could not be parsed into the
	// requested representation. Best-effort callers may swallow this code.
	CodeInvalidFormat Code = "invalid_format"
	// CodeTypeMismatch: inputs have incompatible kinds (for example one
	// calendar date and one datetime in the same range).
	CodeTypeMismatch Code = "type_mismatch"
	// CodeInvalidInput: a required value is missing or fails validation.
	CodeInvalidInput Code = "invalid_input"
)

// Error is a domain error with a machine-readable code.
type Error struct {
	Code    Code
	Message string
	// Value holds the offending input, when one exists. Diagnostic only;
	// callers branch on Code, never on Value.
	Value any
}

// New returns a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf returns a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithValue returns a copy of the error carrying the offending input value.
func (e *Error) WithValue(v any) *Error {
	c := *e
	c.Value = v
	return &c
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode reports whether err is (or wraps) a domain error with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}
