package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Reaper periodically removes state that can no longer affect authentication:
// revocation entries whose token has expired, and deactivated users whose
// every token has expired.
type Reaper struct {
	revocations RevocationStore
	users       UserRepository
	contacts    ContactStore
	tokenTTL    time.Duration
	interval    time.Duration
	log         *zap.Logger
	now         func() time.Time
}

// defaultReapInterval applies when no positive interval is configured.
const defaultReapInterval = 10 * time.Minute

// NewReaper creates a new Reaper.
func NewReaper(revocations RevocationStore, users UserRepository, contacts ContactStore, tokenTTL, interval time.Duration, log *zap.Logger) *Reaper {
	if interval <= 0 {
		interval = defaultReapInterval
	}
	return &Reaper{
		revocations: revocations,
		users:       users,
		contacts:    contacts,
		tokenTTL:    tokenTTL,
		interval:    interval,
		log:         log,
		now:         time.Now,
	}
}

// Run calls RunOnce every interval until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				r.log.Warn("reaper pass failed", zap.Error(err))
			}
		}
	}
}

// RunOnce performs a single cleanup pass.
func (r *Reaper) RunOnce(ctx context.Context) error {
	expired, err := r.revocations.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("delete expired revocations: %w", err)
	}

	cutoff := r.now().Add(-r.tokenTTL)
	ids, err := r.users.FindDeactivatedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("find deactivated users: %w", err)
	}

	purged := 0
	for _, id := range ids {
		if _, err := r.contacts.DeleteByOwner(ctx, id); err != nil {
			return fmt.Errorf("delete contacts of user %d: %w", id, err)
		}
		if err := r.users.HardDelete(ctx, id); err != nil {
			return fmt.Errorf("purge user %d: %w", id, err)
		}
		purged++
	}

	if expired > 0 || purged > 0 {
		r.log.Info("reaper pass",
			zap.Int64("revocations_removed", expired),
			zap.Int("users_purged", purged),
		)
	}
	return nil
}
