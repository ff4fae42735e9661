// Package domain defines domain-level errors for the contact feature.
package domain

import "contact_backend/internal/shared/apperr"

var (
	// ErrContactNotFound covers both a missing contact and one owned by
	// another user.
	ErrContactNotFound = apperr.New(apperr.KindNotFound, "CONTACT_NOT_FOUND", "contact not found")

	ErrInvalidPhone = apperr.New(apperr.KindValidation, "INVALID_PHONE", "phone must be a number")
	ErrNameRequired = apperr.New(apperr.KindValidation, "NAME_REQUIRED", "name is required")
)
