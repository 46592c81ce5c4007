// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package cache

import (
	"sync"
	"time"
)

// Entry is a cached value with its expiry.
type Entry[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory map with per-entry TTL.
//
// Expiry is checked lazily on reads and in bulk by Sweep. The cache runs no
// goroutine of its own; the owner decides how often to sweep.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	ttl     time.Duration
	now     func() time.Time
	stats   Stats
}

// Stats tracks cache performance
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries live for ttl after their last write or
// touch.
//
//	sessions := cache.New[*Session](30 * time.Minute)
//	sessions.Set(id, s)
//	if s, ok := sessions.Touch(id); ok {
//	    // s stays alive for another 30 minutes
//	}
func New[V any](ttl time.Duration) *Cache[V] {
	return NewWithClock[V](ttl, time.Now)
}

// NewWithClock creates a cache that reads time from now. Tests use it to
// expire entries without sleeping.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]Entry[V]),
		ttl:     ttl,
		now:     now,
		stats: Stats{
			LastCleanup: now(),
		},
	}
}

// TTL returns the default entry lifetime.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

// Touch returns the value for key and gives a live entry a fresh TTL. An
// expired entry counts as a miss and is left in place so that the next Sweep
// reports its key.
func (c *Cache[V]) Touch(key string) (V, bool) {
	c.mu.Lock()
	entry, exists := c.entries[key]
	now := c.now()

	if !exists || now.After(entry.ExpiresAt) {
		c.mu.Unlock()
		c.recordMiss()
		var zero V
		return zero, false
	}

	entry.ExpiresAt = now.Add(c.ttl)
	c.entries[key] = entry
	c.mu.Unlock()

	c.recordHit()
	return entry.Data, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{
		Data:      value,
		ExpiresAt: c.now().Add(ttl),
	}
	c.updateTotalKeysLocked()
}

// Delete removes key and reports whether it was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	_, exists := c.entries[key]
	delete(c.entries, key)
	c.updateTotalKeysLocked()
	c.mu.Unlock()

	if exists {
		c.recordEviction()
	}
	return exists
}

// Sweep removes every expired entry and returns the removed keys.
func (c *Cache[V]) Sweep() []string {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []string
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			removed = append(removed, key)
		}
	}

	c.stats.mu.Lock()
	c.stats.Evictions += int64(len(removed))
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()

	return removed
}

// Len returns the number of stored entries, including expired ones not yet
// swept.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a copy of the current statistics.
func (c *Cache[V]) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns hits as a percentage of lookups.
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// updateTotalKeysLocked must be called with c.mu held.
func (c *Cache[V]) updateTotalKeysLocked() {
	c.stats.mu.Lock()
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.mu.Unlock()
}

func (c *Cache[V]) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

func (c *Cache[V]) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

func (c *Cache[V]) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
}
