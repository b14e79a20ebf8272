package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the closed set of failure categories the
// action layer produces. Anything not classified is Unhandled.
type Kind int

const (
	KindUnhandled Kind = iota
	KindNotFound
	KindForbidden
	KindValidation
	KindUpload
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation_failure"
	case KindUpload:
		return "upload_failure"
	default:
		return "unhandled"
	}
}

// Error is the domain error type carrying a kind and, for validation
// failures, per-field messages.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string // field -> message, validation failures only
	Err    error             // wrapped cause, may be nil
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a NotFound-class error
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Forbidden creates a Forbidden-class error
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

// Validation creates a ValidationFailure-class error with per-field messages
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: "validation failed", Fields: fields}
}

// Upload creates an UploadFailure-class error
func Upload(msg string) *Error {
	return &Error{Kind: KindUpload, Msg: msg}
}

// Unhandled wraps an arbitrary error as an Unhandled-class error
func Unhandled(err error) *Error {
	return &Error{Kind: KindUnhandled, Msg: "internal error", Err: err}
}

// KindOf returns the kind of err, or KindUnhandled if err is not a domain error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnhandled
}

// IsNotFound reports whether err is a NotFound-class error
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsForbidden reports whether err is a Forbidden-class error
func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}

// IsValidation reports whether err is a ValidationFailure-class error
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// FieldErrors returns the per-field messages of a validation error, or nil
func FieldErrors(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindValidation {
		return e.Fields
	}
	return nil
}
