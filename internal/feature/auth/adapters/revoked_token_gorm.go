package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/usecase"
)

// revokedTokenGorm is the database-backed revocation registry, used when
// Redis is not configured.
type revokedTokenGorm struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.RevocationStore = (*revokedTokenGorm)(nil)

// NewRevokedTokenGorm creates a new revokedTokenGorm.
func NewRevokedTokenGorm(db *gorm.DB) *revokedTokenGorm {
	return &revokedTokenGorm{db: db, now: time.Now}
}

// Revoke stores entry. Revoking the same token twice is not an error.
func (r *revokedTokenGorm) Revoke(ctx context.Context, entry *entity.RevokedToken) error {
	model := RevokedTokenModelFromEntity(entry)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

// IsRevoked ignores entries whose token has already expired.
func (r *revokedTokenGorm) IsRevoked(ctx context.Context, token string) (bool, error) {
	entry, err := r.find(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !entry.IsExpired(r.now()), nil
}

func (r *revokedTokenGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&RevokedTokenModel{})
	return result.RowsAffected, result.Error
}

func (r *revokedTokenGorm) find(ctx context.Context, token string) (*entity.RevokedToken, error) {
	var model RevokedTokenModel
	if err := r.db.WithContext(ctx).Where("token_hash = ?", entity.HashToken(token)).First(&model).Error; err != nil {
		return nil, err
	}
	return model.ToEntity(), nil
}
