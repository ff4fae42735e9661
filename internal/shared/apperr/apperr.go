// Package apperr defines the error taxonomy shared by every feature and the
// mapping from that taxonomy to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a DomainError for the transport boundary.
type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindDuplicateResource  Kind = "duplicate_resource"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUnauthorized       Kind = "unauthorized"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal_error"
)

// DomainError is a typed failure raised by core logic.
// Two DomainErrors match under errors.Is when their Code is equal, so a
// wrapped copy still matches the sentinel it was built from.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// New creates a sentinel DomainError.
func New(kind Kind, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Wrap attaches an underlying cause to a copy of the sentinel.
func Wrap(sentinel *DomainError, err error) *DomainError {
	return &DomainError{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Generic errors, one per kind.
var (
	ErrValidation         = New(KindValidation, "VALIDATION_ERROR", "validation failed")
	ErrInvalidCredentials = New(KindInvalidCredentials, "INVALID_CREDENTIALS", "invalid credentials")
	ErrUnauthorized       = New(KindUnauthorized, "UNAUTHORIZED", "unauthorized")
	ErrNotFound           = New(KindNotFound, "NOT_FOUND", "resource not found")
	ErrInternal           = New(KindInternal, "INTERNAL_ERROR", "internal server error")
)

// As extracts the DomainError carried by err, if any.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	if de, ok := As(err); ok {
		return de.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to a status code. Only the transport layer should call it.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindValidation, KindDuplicateResource, KindInvalidCredentials:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that is safe to send to a client.
// Internal errors never expose their cause.
func PublicMessage(err error) string {
	de, ok := As(err)
	if !ok || de.Kind == KindInternal {
		return ErrInternal.Message
	}
	return de.Message
}
