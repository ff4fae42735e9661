// Package usecase implements the ownership-scoped contact operations.
package usecase

import (
	"context"
	"strings"

	"contact_backend/internal/feature/contact/domain"
	"contact_backend/internal/feature/contact/domain/entity"
	"contact_backend/internal/platform/validation"
)

// ContactRepository abstracts contact persistence. Every method that touches
// a single contact matches on (id, ownerID); a contact owned by someone else
// yields domain.ErrContactNotFound exactly like a missing one.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Contact, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error)
	// Update merges patch into the stored contact atomically.
	Update(ctx context.Context, id, ownerID uint, patch entity.ContactPatch) (*entity.Contact, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}

// contactUsecase applies the caller's identity to every operation. The owner
// is never taken from client input.
type contactUsecase struct {
	contacts ContactRepository
}

// NewContactUsecase creates a new contactUsecase.
func NewContactUsecase(contacts ContactRepository) *contactUsecase {
	return &contactUsecase{contacts: contacts}
}

// Create stores a new contact owned by ownerID.
func (u *contactUsecase) Create(ctx context.Context, ownerID uint, c *entity.Contact) (*entity.Contact, error) {
	c.ID = 0
	c.UserID = ownerID
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, domain.ErrNameRequired
	}
	if !validation.IsPhone(c.Phone) {
		return nil, domain.ErrInvalidPhone
	}
	if err := u.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *contactUsecase) Get(ctx context.Context, ownerID, id uint) (*entity.Contact, error) {
	return u.contacts.FindByIDAndOwner(ctx, id, ownerID)
}

// List returns every contact of ownerID, oldest first.
func (u *contactUsecase) List(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	return u.contacts.ListByOwner(ctx, ownerID)
}

// Update merges the supplied fields. Unspecified fields keep their values.
func (u *contactUsecase) Update(ctx context.Context, ownerID, id uint, patch entity.ContactPatch) (*entity.Contact, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		patch.Name = &name
	}
	if patch.Phone != nil && !validation.IsPhone(*patch.Phone) {
		return nil, domain.ErrInvalidPhone
	}
	if patch.IsEmpty() {
		return u.contacts.FindByIDAndOwner(ctx, id, ownerID)
	}
	return u.contacts.Update(ctx, id, ownerID, patch)
}

func (u *contactUsecase) Delete(ctx context.Context, ownerID, id uint) error {
	return u.contacts.DeleteByIDAndOwner(ctx, id, ownerID)
}
