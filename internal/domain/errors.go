package domain

import (
	"errors"
	"fmt"
)

// Kind classifies engine errors. Transports map a kind to a status code.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindConfiguration   Kind = "configuration"
	KindInternal        Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	// Fields maps offending input fields to a reason (validation only).
	Fields map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind, e.Message, e.Fields)
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ValidationError(message string, fields map[string]string) error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// FieldError is a validation error for a single input field.
func FieldError(field, reason string) error {
	return ValidationError("invalid input", map[string]string{field: reason})
}

func Unauthenticated(format string, args ...any) error {
	return newError(KindUnauthenticated, format, args...)
}

func Forbidden(format string, args ...any) error { return newError(KindForbidden, format, args...) }

func NotFound(format string, args ...any) error { return newError(KindNotFound, format, args...) }

func Conflict(format string, args ...any) error { return newError(KindConflict, format, args...) }

func ConfigurationError(format string, args ...any) error {
	return newError(KindConfiguration, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
