// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account owner.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email must be unique across all users, including deactivated ones
	// that have not been reaped yet.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// PasswordHash is the bcrypt digest. It is never serialized.
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// DeletedAt is the deactivation flag. A set value rejects every token the
	// user holds.
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsActive reports whether the account has not been deactivated.
func (u *User) IsActive() bool {
	return !u.DeletedAt.Valid
}
