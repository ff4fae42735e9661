package usecase

import (
	"context"
	"fmt"
	"time"

	"contact_backend/internal/feature/auth/domain"
	"contact_backend/internal/feature/auth/domain/entity"
)

// accountUsecase implements the authenticated account operations.
type accountUsecase struct {
	users       UserRepository
	contacts    ContactStore
	hasher      PasswordHasher
	revocations RevocationStore
	now         func() time.Time
}

// NewAccountUsecase creates a new accountUsecase.
func NewAccountUsecase(users UserRepository, contacts ContactStore, hasher PasswordHasher, revocations RevocationStore) *accountUsecase {
	return &accountUsecase{
		users:       users,
		contacts:    contacts,
		hasher:      hasher,
		revocations: revocations,
		now:         time.Now,
	}
}

// GetAccount returns the caller's profile with the number of contacts they own.
func (u *accountUsecase) GetAccount(ctx context.Context, userID uint) (*entity.Account, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := u.contacts.CountByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	return &entity.Account{User: user, ContactCount: count}, nil
}

// EditAccount applies the supplied fields to the caller's account.
func (u *accountUsecase) EditAccount(ctx context.Context, userID uint, patch entity.AccountPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		taken, err := u.users.EmailTaken(ctx, *patch.Email, userID)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := u.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount deactivates the caller, revokes the presented token and
// removes the caller's contacts. Deactivation comes first so that any
// request racing with this one fails the gate.
func (u *accountUsecase) DeleteAccount(ctx context.Context, p *entity.Principal) error {
	userID := p.UserID()
	if err := u.users.Deactivate(ctx, userID); err != nil {
		return err
	}

	entry := entity.NewRevokedToken(p.Token, userID, p.ExpiresAt, u.now())
	if err := u.revocations.Revoke(ctx, entry); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	if _, err := u.contacts.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("delete contacts: %w", err)
	}
	return nil
}
