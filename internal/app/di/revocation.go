package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "contact_backend/internal/feature/auth/adapters"
	"contact_backend/internal/feature/auth/usecase"
	"contact_backend/internal/platform/revocation"
)

// NewRevocationStore creates a RevocationStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the revoked_tokens table.
func NewRevocationStore(rdb *redis.Client, db *gorm.DB, prefix string) usecase.RevocationStore {
	if rdb != nil {
		return revocation.NewRevocationRedis(rdb, prefix)
	}
	return authadapters.NewRevokedTokenGorm(db)
}
