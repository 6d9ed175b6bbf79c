// Package memory provides in-memory driven adapters. Nothing here is
// authoritative: every cached value must be re-derivable from a fresh
// remote call, and the whole store dies with the process.
package memory

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the entry lifetime used by Set.
const DefaultTTL = 5 * time.Minute

// entry pairs a value with its absolute expiry.
type entry[V any] struct {
	value  V
	expiry time.Time
}

// TTLCache is a generic key/value cache with per-entry absolute expiry.
// Safe for concurrent readers and writers; entries are independently
// keyed and overwritten whole. No lock is ever held across I/O.
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// NewTTLCache creates a cache whose Set uses the given default TTL
// (DefaultTTL when zero or negative).
func NewTTLCache[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTLCache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Set stores a value under the default TTL, replacing any prior entry.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.SetTTL(key, value, c.ttl)
}

// SetTTL stores a value with an explicit TTL.
func (c *TTLCache[K, V]) SetTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiry: c.now().Add(ttl)}
}

// Get returns the live value for a key. An expired entry is invisible
// and reclaimed on the spot, so expiry takes effect without waiting for
// a sweep.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if c.now().After(e.expiry) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Delete removes a key regardless of expiry.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Sweep evicts every expired entry. Bounds memory growth from keys
// that are never read again.
func (c *TTLCache[K, V]) Sweep() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StartSweeping runs Sweep on the given interval until the context is
// cancelled. The lifecycle owner starts this once at process start;
// the cache itself never spawns goroutines implicitly.
func (c *TTLCache[K, V]) StartSweeping(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}
