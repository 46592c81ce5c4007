// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package cache provides a thread-safe, generic in-memory cache with TTL.

It backs the presentation session store: each live session is an entry
keyed by its id, and every request against a session slides its expiry
forward with Touch.

# Expiry

Entries are checked lazily on Touch and in bulk by Sweep. The
cache starts no goroutine. The session sweeper service calls Sweep on its
own interval and learns which keys were dropped.

	c := cache.New[*Session](30 * time.Minute)
	c.Set(id, s)

	s, ok := c.Touch(id) // hit: TTL restarts
	removed := c.Sweep()  // expired keys

# Statistics

GetStats and HitRate report hits, misses, evictions and the current key
count. Delete counts an eviction only when the key existed.

# Thread Safety

All methods are safe for concurrent use. Len and GetStats take a read
lock; every other method takes the write lock.
*/
package cache
