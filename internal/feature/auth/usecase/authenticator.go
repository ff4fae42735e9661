package usecase

import (
	"context"
	"errors"
	"fmt"

	"contact_backend/internal/feature/auth/domain"
	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/shared/apperr"
)

// Authenticator runs the authentication gate for a raw bearer token.
type Authenticator struct {
	verifier    TokenVerifier
	revocations RevocationStore
	users       UserRepository
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(verifier TokenVerifier, revocations RevocationStore, users UserRepository) *Authenticator {
	return &Authenticator{verifier: verifier, revocations: revocations, users: users}
}

// Authenticate verifies the token, then the revocation registry, then the
// subject, in that order. A registry failure rejects the request as an
// internal error instead of letting it through.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := a.verifier.ParseToken(token)
	if err != nil {
		return nil, apperr.Wrap(domain.ErrInvalidToken, err)
	}

	revoked, err := a.revocations.IsRevoked(ctx, token)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInternal, fmt.Errorf("revocation lookup: %w", err))
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	user, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccountInvalid
		}
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	if !user.IsActive() {
		return nil, domain.ErrAccountInvalid
	}

	return &entity.Principal{User: user, Token: token, ExpiresAt: claims.ExpiresAt}, nil
}
