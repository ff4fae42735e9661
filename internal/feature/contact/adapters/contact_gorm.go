// Package adapters provides the GORM-backed contact store.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authusecase "contact_backend/internal/feature/auth/usecase"
	"contact_backend/internal/feature/contact/domain"
	"contact_backend/internal/feature/contact/domain/entity"
	"contact_backend/internal/feature/contact/usecase"
)

// ContactModel is the GORM model for the contacts table.
type ContactModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"index;not null"`
	Name      string  `gorm:"size:255;not null"`
	Phone     string  `gorm:"size:32;not null"`
	Email     *string `gorm:"size:255"`
	Address   *string `gorm:"size:1024"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContactModel) TableName() string {
	return "contacts"
}

func toModel(e *entity.Contact) *ContactModel {
	return &ContactModel{
		ID:      e.ID,
		UserID:  e.UserID,
		Name:    e.Name,
		Phone:   e.Phone,
		Email:   e.Email,
		Address: e.Address,
	}
}

func (m *ContactModel) toEntity() *entity.Contact {
	return &entity.Contact{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type contactGorm struct {
	db *gorm.DB
}

var (
	_ usecase.ContactRepository = (*contactGorm)(nil)
	_ authusecase.ContactStore  = (*contactGorm)(nil)
)

// NewContactGorm creates a new contactGorm.
func NewContactGorm(db *gorm.DB) *contactGorm {
	return &contactGorm{db: db}
}

func (r *contactGorm) Create(ctx context.Context, c *entity.Contact) error {
	m := toModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*c = *m.toEntity()
	return nil
}

func (r *contactGorm) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	m, err := findOwned(r.db.WithContext(ctx), id, ownerID)
	if err != nil {
		return nil, err
	}
	return m.toEntity(), nil
}

func (r *contactGorm) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	var rows []ContactModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Contact, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toEntity())
	}
	return out, nil
}

// Update reads and writes the row inside one transaction so concurrent
// partial updates of the same contact do not lose fields.
func (r *contactGorm) Update(ctx context.Context, id, ownerID uint, patch entity.ContactPatch) (*entity.Contact, error) {
	var out *entity.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findOwned(tx, id, ownerID)
		if err != nil {
			return err
		}

		current := m.toEntity()
		patch.Apply(current)
		m.Name, m.Phone, m.Email, m.Address = current.Name, current.Phone, current.Email, current.Address

		if err := tx.Model(m).
			Select("name", "phone", "email", "address", "updated_at").
			Updates(m).Error; err != nil {
			return err
		}
		out = m.toEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contactGorm) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&ContactModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// CountByOwner is used by the account profile.
func (r *contactGorm) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ContactModel{}).Where("user_id = ?", ownerID).Count(&n).Error
	return n, err
}

// DeleteByOwner removes every contact of ownerID. Used on account deletion.
func (r *contactGorm) DeleteByOwner(ctx context.Context, ownerID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&ContactModel{})
	return result.RowsAffected, result.Error
}

func findOwned(db *gorm.DB, id, ownerID uint) (*ContactModel, error) {
	var m ContactModel
	if err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return &m, nil
}
