// Package revocation provides the Redis-backed revocation registry.
package revocation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/usecase"
)

// RevocationRedis implements usecase.RevocationStore using Redis. Each entry
// lives under prefix:<token hash> and expires together with its token.
type RevocationRedis struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ usecase.RevocationStore = (*RevocationRedis)(nil)

// NewRevocationRedis creates a new RevocationRedis instance.
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	if prefix == "" {
		prefix = "revoked"
	}
	return &RevocationRedis{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (r *RevocationRedis) key(hash string) string {
	return fmt.Sprintf("%s:%s", r.prefix, hash)
}

// Revoke stores entry until the token's own expiry. A token that has already
// expired cannot authenticate, so nothing is written for it.
func (r *RevocationRedis) Revoke(ctx context.Context, entry *entity.RevokedToken) error {
	ttl := entry.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal revoked token: %w", err)
	}
	return r.client.Set(ctx, r.key(entry.TokenHash), data, ttl).Err()
}

// IsRevoked reports whether token has a live entry.
func (r *RevocationRedis) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(entity.HashToken(token))).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteExpired is a no-op: Redis drops entries through their TTL.
func (r *RevocationRedis) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
