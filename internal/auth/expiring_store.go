package auth

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/errors"
	"authgate/internal/infra/metrics"

	"github.com/thejerf/abtime"
)

// ExpiringStore adds a time-to-live to another Store. Expiry is evaluated on
// Lookup: an expired session is deleted from the wrapped store and reported as
// ErrSessionExpired. A non-positive ttl disables expiry.
type ExpiringStore struct {
	Store

	ttl   time.Duration
	clock abtime.AbstractTime
}

// NewExpiringStore wraps inner with ttl. A nil clock uses the wall clock.
func NewExpiringStore(inner Store, ttl time.Duration, clock abtime.AbstractTime) *ExpiringStore {
	return &ExpiringStore{Store: inner, ttl: ttl, clock: orRealTime(clock)}
}

// TTL returns the configured session lifetime.
func (s *ExpiringStore) TTL() time.Duration {
	return s.ttl
}

func (s *ExpiringStore) Lookup(ctx context.Context, sessionID string) (*entity.UserSession, error) {
	session, err := s.Store.Lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	expiresAt, ok := session.ExpiresAt(s.ttl)
	if !ok {
		return session, nil
	}

	if !session.CreatedAt.IsZero() && !s.clock.Now().UTC().After(expiresAt) {
		return session, nil
	}

	return nil, s.purge(ctx, sessionID)
}

// purge deletes an expired session and reports ErrSessionExpired.
func (s *ExpiringStore) purge(ctx context.Context, sessionID string) error {
	// A concurrent lookup may have purged it already.
	if err := s.Store.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	metrics.RecordSessionExpired()

	return ErrSessionExpired
}
