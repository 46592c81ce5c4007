// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/placemap/internal/cache"
	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/metrics"
)

// StoreConfig configures a session store.
type StoreConfig struct {
	TTL         time.Duration
	MaxSessions int // 0 = unlimited

	// OnRemove is called with the id of every session that is deleted or
	// expires, outside any store lock.
	OnRemove func(id string)

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Store holds live sessions keyed by id. Sessions expire after TTL without
// a Get.
type Store struct {
	mu       sync.Mutex // serialises Create's limit check
	sessions *cache.Cache[*Session]
	opts     Options
	max      int
	onRemove func(id string)
}

// NewStore creates a store whose sessions share opts.
func NewStore(cfg StoreConfig, opts Options) *Store {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	onRemove := cfg.OnRemove
	if onRemove == nil {
		onRemove = func(string) {}
	}

	return &Store{
		sessions: cache.NewWithClock[*Session](cfg.TTL, now),
		opts:     opts.withDefaults(),
		max:      cfg.MaxSessions,
		onRemove: onRemove,
	}
}

// Create starts a new session. It sweeps expired sessions before refusing
// with ErrStoreFull.
func (st *Store) Create() (*Session, error) {
	st.mu.Lock()

	var removed []string
	if st.max > 0 && st.sessions.Len() >= st.max {
		removed = st.sweepLocked()
		if st.sessions.Len() >= st.max {
			st.mu.Unlock()
			st.notifyRemoved(removed)
			return nil, fmt.Errorf("%w (%d)", ErrStoreFull, st.max)
		}
	}

	s := New(uuid.New().String(), st.opts)
	st.sessions.Set(s.ID(), s)
	metrics.SessionsActive.Set(float64(st.sessions.Len()))
	st.mu.Unlock()

	st.notifyRemoved(removed)
	logging.Debug().Str("session_id", s.ID()).Msg("Session created")
	return s, nil
}

// Get returns a live session and restarts its TTL.
func (st *Store) Get(id string) (*Session, error) {
	s, ok := st.sessions.Touch(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s, nil
}

// Delete ends a session.
func (st *Store) Delete(id string) error {
	if !st.sessions.Delete(id) {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	metrics.SessionsActive.Set(float64(st.sessions.Len()))
	st.onRemove(id)

	logging.Debug().Str("session_id", id).Msg("Session deleted")
	return nil
}

// Sweep drops expired sessions and returns their ids.
func (st *Store) Sweep() []string {
	st.mu.Lock()
	removed := st.sweepLocked()
	st.mu.Unlock()

	st.notifyRemoved(removed)
	return removed
}

// sweepLocked must be called with st.mu held.
func (st *Store) sweepLocked() []string {
	removed := st.sessions.Sweep()
	metrics.SessionsActive.Set(float64(st.sessions.Len()))

	if len(removed) > 0 {
		metrics.SessionsExpired.Add(float64(len(removed)))
		logging.Info().Int("expired", len(removed)).Int("active", st.sessions.Len()).Msg("Expired sessions removed")
	}
	return removed
}

func (st *Store) notifyRemoved(ids []string) {
	for _, id := range ids {
		st.onRemove(id)
	}
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}

// StoreStats summarises store activity since start.
type StoreStats struct {
	Live      int       `json:"live"`
	Lookups   int64     `json:"lookups"`
	HitRate   float64   `json:"hit_rate"` // percent of lookups that found a live session
	Removed   int64     `json:"removed"`  // deleted plus expired
	LastSweep time.Time `json:"last_sweep"`
}

// Stats reports the store's lookup and removal counters.
func (st *Store) Stats() StoreStats {
	cs := st.sessions.GetStats()
	return StoreStats{
		Live:      st.sessions.Len(),
		Lookups:   cs.Hits + cs.Misses,
		HitRate:   st.sessions.HitRate(),
		Removed:   cs.Evictions,
		LastSweep: cs.LastCleanup,
	}
}
