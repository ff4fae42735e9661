package usecase

import (
	"context"
	"time"

	"contact_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Interfaces are defined by the consumer (usecase), not the provider (adapters).
// Lookups only see active users unless stated otherwise.
type UserRepository interface {
	// Create persists a new user. A duplicate email yields domain.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns domain.ErrUserNotFound when no active user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns domain.ErrUserNotFound when no active user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// EmailTaken reports whether any user other than exceptID holds email,
	// including deactivated users that have not been purged.
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)

	// Update saves name, email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Deactivate soft-deletes the user.
	Deactivate(ctx context.Context, id uint) error

	// FindDeactivatedBefore lists users deactivated before cutoff.
	FindDeactivatedBefore(ctx context.Context, cutoff time.Time) ([]uint, error)

	// HardDelete removes the row permanently.
	HardDelete(ctx context.Context, id uint) error
}

// RevocationStore is the revocation registry.
type RevocationStore interface {
	Revoke(ctx context.Context, entry *entity.RevokedToken) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// DeleteExpired returns the number of removed entries.
	DeleteExpired(ctx context.Context) (int64, error)
}

// ContactStore is the part of the contact store the account lifecycle needs.
type ContactStore interface {
	CountByOwner(ctx context.Context, userID uint) (int64, error)
	DeleteByOwner(ctx context.Context, userID uint) (int64, error)
}

// TokenIssuer mints bearer tokens.
type TokenIssuer interface {
	GenerateToken(userID uint) (string, time.Time, error)
}

// TokenVerifier checks signature and expiry of a bearer token.
type TokenVerifier interface {
	ParseToken(token string) (*entity.TokenClaims, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
