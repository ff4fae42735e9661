// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	authusecase "contact_backend/internal/feature/auth/usecase"
	"contact_backend/internal/feature/contact/domain/entity"
	"contact_backend/internal/feature/contact/usecase"
)

// ContactStore is everything the decorated repository must provide: the
// per-contact operations plus the owner-wide ones used by the account flow.
type ContactStore interface {
	usecase.ContactRepository
	authusecase.ContactStore
}

// CachingContactRepository decorates a ContactStore with a Redis cache of
// each owner's contact list. Every write for an owner moves that owner to a fresh cache generation.
type CachingContactRepository struct {
	inner     ContactStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ ContactStore = (*CachingContactRepository)(nil)

// NewCachingContactRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "contacts".
func NewCachingContactRepository(rdb *redis.Client, ttl time.Duration, inner ContactStore, namespace string) *CachingContactRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "contacts"
	}
	return &CachingContactRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListByOwner checks the cache first then falls back to the database.
// The list is stored under the owner's current generation, read before the
// database. A write that lands in between bumps the generation, so a list
// read before it is never served afterwards.
func (c *CachingContactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID)
	}

	gen, err := c.generation(ctx, ownerID)
	if err != nil {
		return c.inner.ListByOwner(ctx, ownerID)
	}
	key := c.listKey(ownerID, gen)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Contact
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// best effort
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if err := c.inner.Create(ctx, contact); err != nil {
		return err
	}
	c.invalidate(ctx, contact.UserID)
	return nil
}

func (c *CachingContactRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Contact, error) {
	return c.inner.FindByIDAndOwner(ctx, id, ownerID)
}

func (c *CachingContactRepository) Update(ctx context.Context, id, ownerID uint, patch entity.ContactPatch) (*entity.Contact, error) {
	out, err := c.inner.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, ownerID)
	return out, nil
}

func (c *CachingContactRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error {
	if err := c.inner.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

func (c *CachingContactRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	return c.inner.CountByOwner(ctx, ownerID)
}

func (c *CachingContactRepository) DeleteByOwner(ctx context.Context, ownerID uint) (int64, error) {
	n, err := c.inner.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, ownerID)
	return n, nil
}

// invalidate moves the owner to a new generation and drops the previous
// list. Failures are ignored; the entry still expires after ttl.
func (c *CachingContactRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	gen, err := c.rdb.Incr(ctx, c.generationKey(ownerID)).Result()
	if err != nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(ownerID, gen-1)).Err()
}

// generation returns the owner's current cache generation, 0 when none is stored.
func (c *CachingContactRepository) generation(ctx context.Context, ownerID uint) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.generationKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *CachingContactRepository) generationKey(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d:gen", c.namespace, ownerID)
}

func (c *CachingContactRepository) listKey(ownerID uint, gen int64) string {
	return fmt.Sprintf("%s:owner:%d:%d", c.namespace, ownerID, gen)
}
