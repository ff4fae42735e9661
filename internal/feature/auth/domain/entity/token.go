package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	UserID    uint
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// UserID returns the caller's identity.
func (p *Principal) UserID() uint {
	return p.User.ID
}

// RevokedToken records a bearer token that must no longer authenticate.
// Only the SHA-256 digest of the token is kept.
type RevokedToken struct {
	TokenHash string
	UserID    uint
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true once the underlying token would have expired anyway.
func (r *RevokedToken) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// IssuedToken is the result of a successful login.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// HashToken returns the registry key for a raw bearer token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// NewRevokedToken builds the registry entry for token.
func NewRevokedToken(token string, userID uint, expiresAt, now time.Time) *RevokedToken {
	return &RevokedToken{
		TokenHash: HashToken(token),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
}
