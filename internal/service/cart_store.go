package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/logger"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/guttosm/bakery-service/internal/service/cache"
	"github.com/rs/zerolog/log"
)

// CartPersister stores cart snapshots across process restarts and session evictions.
type CartPersister interface {
	// Load returns the latest snapshot for a session, or nil when none exists.
	Load(ctx context.Context, sessionID string) (*model.CartSnapshot, error)
	// Save stores a snapshot. Snapshots older than the stored version are ignored.
	Save(ctx context.Context, snapshot model.CartSnapshot) error
	// Delete removes a session's snapshot.
	Delete(ctx context.Context, sessionID string) error
}

// CartStoreConfig tunes a CartStore.
type CartStoreConfig struct {
	MaxSessions int
	SessionTTL  time.Duration
	MaxLines    int
	// SweepInterval is how often idle sessions are evicted. Zero means one minute.
	SweepInterval time.Duration
}

// CartStore owns the in-memory carts of active sessions.
// Idle sessions expire after SessionTTL; an optional persister restores them on the next visit.
type CartStore struct {
	carts     *ttlCache[string, *Cart]
	persister CartPersister
	maxLines  int
}

// NewCartStore creates a session-scoped cart registry. persister may be nil.
func NewCartStore(cfg CartStoreConfig, persister CartPersister) *CartStore {
	s := &CartStore{
		persister: persister,
		maxLines:  cfg.MaxLines,
	}
	s.carts = newTTLCache(cacheConfig[string, *Cart]{
		Name:            "cart_sessions",
		Capacity:        cfg.MaxSessions,
		TTL:             cfg.SessionTTL,
		Sliding:         true,
		CleanupInterval: cfg.SweepInterval,
		OnEvict: func(sessionID string, _ *Cart) {
			l := logger.ForSession(sessionID)
			l.Debug().Msg("Cart session evicted")
			metrics.SetActiveCartSessions(s.carts.Len())
		},
	})
	return s
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// Get returns the cart for a session, restoring it from the persister on a memory miss.
// Concurrent misses for one session all return the same cart.
func (s *CartStore) Get(ctx context.Context, sessionID string) (*Cart, bool) {
	c, ok, _ := s.lookup(ctx, sessionID)
	return c, ok
}

// GetOrCreate returns the session's cart, creating an empty one when none exists.
// An empty sessionID gets a newly generated one; the returned cart carries it.
func (s *CartStore) GetOrCreate(ctx context.Context, sessionID string) *Cart {
	c, ok, loadFailed := s.lookup(ctx, sessionID)
	if ok {
		return c
	}
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	opts := []CartOption{WithMaxLines(s.maxLines)}
	if loadFailed {
		// The stored snapshot version is unknown; start above any counter it can hold
		// so this cart's snapshots replace it instead of being skipped as stale.
		opts = append(opts, withBaseVersion(time.Now().UnixNano()))
	}
	return s.adopt(NewCart(sessionID, opts...))
}

// lookup finds a session's cart in memory or in the persister.
// loadFailed reports that a stored snapshot may exist but could not be read.
func (s *CartStore) lookup(ctx context.Context, sessionID string) (c *Cart, ok, loadFailed bool) {
	if sessionID == "" {
		return nil, false, false
	}
	if c, ok := s.carts.Get(sessionID); ok {
		return c, true, false
	}
	if s.persister == nil {
		return nil, false, false
	}

	snap, err := s.persister.Load(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to load cart snapshot")
		return nil, false, true
	}
	if snap == nil {
		return nil, false, false
	}

	return s.adopt(RestoreCart(*snap, WithMaxLines(s.maxLines))), true, false
}

// adopt stores c unless another request already stored a cart for the session,
// in which case that cart wins and c is discarded.
func (s *CartStore) adopt(c *Cart) *Cart {
	actual, loaded := s.carts.GetOrSet(c.SessionID(), c)
	if !loaded {
		metrics.SetActiveCartSessions(s.carts.Len())
	}
	return actual
}

// Persist saves a consistent snapshot of the cart. It is a no-op without a persister.
func (s *CartStore) Persist(ctx context.Context, c *Cart) error {
	if s.persister == nil {
		return nil
	}
	snap := c.Snapshot()
	if err := s.persister.Save(ctx, snap); err != nil {
		return err
	}
	metrics.ObserveCartValue(snap.Total)
	return nil
}

// Drop forgets a session in memory and in the persister.
func (s *CartStore) Drop(ctx context.Context, sessionID string) error {
	s.carts.Invalidate(sessionID)
	metrics.SetActiveCartSessions(s.carts.Len())
	if s.persister == nil {
		return nil
	}
	return s.persister.Delete(ctx, sessionID)
}

// Len returns the number of sessions held in memory.
func (s *CartStore) Len() int {
	return s.carts.Len()
}

// Metrics returns session cache metrics.
func (s *CartStore) Metrics() cache.Metrics {
	return s.carts.Metrics()
}

// Stop shuts down the idle-session sweeper.
func (s *CartStore) Stop() {
	s.carts.Stop()
}
