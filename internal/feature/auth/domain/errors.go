// Package domain defines domain-level errors for the auth feature.
package domain

import "contact_backend/internal/shared/apperr"

// Domain errors for authentication operations.
var (
	// ErrEmailAlreadyExists is returned when registration or an account edit
	// collides with an existing email.
	ErrEmailAlreadyExists = apperr.New(apperr.KindDuplicateResource, "EMAIL_EXISTS", "user already exists")

	// ErrUserNotFound indicates that no active user matched.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "USER_NOT_FOUND", "user not found")

	// ErrInvalidCredentials is shared by unknown email and wrong password.
	ErrInvalidCredentials = apperr.New(apperr.KindInvalidCredentials, "INVALID_CREDENTIALS", "invalid credentials")

	// ErrPasswordMismatch is returned when a password confirmation differs.
	ErrPasswordMismatch = apperr.New(apperr.KindValidation, "PASSWORD_MISMATCH", "password confirmation does not match password")

	// ErrEmptyPatch is returned when an account edit carries no fields.
	ErrEmptyPatch = apperr.New(apperr.KindValidation, "EMPTY_PATCH", "no fields to update")
)

// Authentication gate failures. All map to 401.
var (
	ErrMissingToken   = apperr.New(apperr.KindUnauthorized, "MISSING_TOKEN", "unauthorized: missing token")
	ErrInvalidToken   = apperr.New(apperr.KindUnauthorized, "INVALID_TOKEN", "unauthorized: invalid token")
	ErrTokenRevoked   = apperr.New(apperr.KindUnauthorized, "TOKEN_REVOKED", "unauthorized: token revoked, please log in again")
	ErrAccountInvalid = apperr.New(apperr.KindUnauthorized, "ACCOUNT_INACTIVE", "unauthorized")
)
