package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contactadapters "contact_backend/internal/feature/contact/adapters"
	"contact_backend/internal/platform/cache"
)

// contactListTTL bounds how long a cached contact list may be served.
const contactListTTL = 5 * time.Minute

// NewContactStore creates the contact store. With Redis, per-owner contact
// lists are cached in front of the database.
func NewContactStore(rdb *redis.Client, db *gorm.DB) cache.ContactStore {
	store := contactadapters.NewContactGorm(db)
	if rdb == nil {
		return store
	}
	return cache.NewCachingContactRepository(rdb, contactListTTL, store, "contacts")
}
