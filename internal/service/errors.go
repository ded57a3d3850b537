package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind tags a failure with the pipeline phase or contract it belongs
// to, so callers can surface the right message without string matching.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindGeneration      ErrorKind = "generation"
	KindImageGeneration ErrorKind = "image_generation"
	KindPersistence     ErrorKind = "persistence"
	KindAuthentication  ErrorKind = "authentication"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
)

// Error is a typed domain error carrying a user-facing message. The wrapped
// cause, when present, is logged server-side only.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindGeneration, KindImageGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewGenerationError(message string, cause error) *Error {
	return &Error{Kind: KindGeneration, Message: message, Err: cause}
}

func NewImageGenerationError(message string, cause error) *Error {
	return &Error{Kind: KindImageGeneration, Message: message, Err: cause}
}

func NewPersistenceError(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: cause}
}

func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// AsError extracts a typed *Error from err, when it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// isUniqueViolation reports whether err is a unique index violation. Covers
// gorm's translated error plus the raw postgres and sqlite messages.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// IsKind reports whether err is a typed error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if e, ok := AsError(err); ok {
		return e.Kind == kind
	}
	return false
}
