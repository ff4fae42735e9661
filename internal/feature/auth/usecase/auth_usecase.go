// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact_backend/internal/feature/auth/domain"
	"contact_backend/internal/feature/auth/domain/entity"
)

// authUsecase implements registration, login and logout.
type authUsecase struct {
	users       UserRepository
	hasher      PasswordHasher
	issuer      TokenIssuer
	revocations RevocationStore
	now         func() time.Time
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, issuer TokenIssuer, revocations RevocationStore) *authUsecase {
	return &authUsecase{
		users:       users,
		hasher:      hasher,
		issuer:      issuer,
		revocations: revocations,
		now:         time.Now,
	}
}

// Register creates a new user with a hashed password.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	taken, err := u.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Name: name, Email: email, PasswordHash: hashed}
	// The unique index still decides when two registrations race past the check.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates the user and returns a signed token.
// A password comparison runs even when the email is unknown, and both
// failures return the same error.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.IssuedToken, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	digest := ""
	if user != nil {
		digest = user.PasswordHash
	}
	if !u.hasher.Verify(password, digest) || user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &entity.IssuedToken{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout revokes the token the caller authenticated with. Other tokens of
// the same user stay valid.
func (u *authUsecase) Logout(ctx context.Context, p *entity.Principal) error {
	entry := entity.NewRevokedToken(p.Token, p.UserID(), p.ExpiresAt, u.now())
	if err := u.revocations.Revoke(ctx, entry); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
