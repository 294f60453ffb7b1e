// Package apperrors defines the error taxonomy shared by all services.
// Every failure surfaced to a caller carries a stable kind plus a
// human-readable message; internals are wrapped, never exposed.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind is a stable, machine-readable failure category
type Kind string

const (
	KindInsufficientFunds Kind = "insufficient_funds"
	KindForbidden         Kind = "forbidden"
	KindInvalidState      Kind = "invalid_state"
	KindInvalidTransition Kind = "invalid_transition"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindUnauthorized      Kind = "unauthorized"
	KindValidation        Kind = "validation"
	KindInternal          Kind = "internal"
)

// AppError pairs a kind with a caller-facing message and an optional cause
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so sentinel-style checks with
// errors.Is work across wrapping.
func (e *AppError) Is(target error) bool {
	var ae *AppError
	if errors.As(target, &ae) {
		return ae.Kind == e.Kind
	}
	return false
}

// New creates an AppError with the given kind and message
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap creates an AppError that keeps the underlying cause
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from any error in the chain; unknown errors are
// reported as internal.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// MessageOf returns the caller-facing message, or a generic one for
// unclassified errors.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
