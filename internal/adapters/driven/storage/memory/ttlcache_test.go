package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_SetGet(t *testing.T) {
	cache := NewTTLCache[string, int](time.Minute)

	cache.Set("a", 1)
	cache.Set("b", 2)

	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestTTLCache_OverwriteReplacesWholeEntry(t *testing.T) {
	cache := NewTTLCache[string, []string](time.Minute)

	cache.Set("k", []string{"old"})
	cache.Set("k", []string{"new", "value"})

	v, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"new", "value"}, v)
	assert.Equal(t, 1, cache.Len())
}

func TestTTLCache_ExpiryWithoutSweep(t *testing.T) {
	cache := NewTTLCache[string, string](time.Minute)

	now := time.Now()
	cache.now = func() time.Time { return now }
	cache.Set("k", "v")

	// Entry is live before its expiry.
	_, ok := cache.Get("k")
	require.True(t, ok)

	// Step the clock past expiry: Get sees absence with no Sweep call,
	// and reclaims the entry on the spot.
	now = now.Add(2 * time.Minute)
	_, ok = cache.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestTTLCache_SetTTLOverridesDefault(t *testing.T) {
	cache := NewTTLCache[string, string](time.Minute)

	now := time.Now()
	cache.now = func() time.Time { return now }
	cache.Set("long", "v")
	cache.SetTTL("short", "v", time.Second)

	now = now.Add(30 * time.Second)
	_, ok := cache.Get("long")
	assert.True(t, ok)
	_, ok = cache.Get("short")
	assert.False(t, ok)
}

func TestTTLCache_Sweep(t *testing.T) {
	cache := NewTTLCache[string, int](time.Minute)

	now := time.Now()
	cache.now = func() time.Time { return now }
	cache.Set("a", 1)
	cache.SetTTL("b", 2, time.Second)
	cache.SetTTL("c", 3, time.Second)

	now = now.Add(10 * time.Second)
	cache.Sweep()

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("a")
	assert.True(t, ok)
}

func TestTTLCache_Delete(t *testing.T) {
	cache := NewTTLCache[string, int](time.Minute)

	cache.Set("a", 1)
	cache.Delete("a")

	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	cache := NewTTLCache[int, int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			cache.Set(n%10, n)
		}(i)
		go func(n int) {
			defer wg.Done()
			cache.Get(n % 10)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 10)
}

func TestTTLCache_StartSweeping(t *testing.T) {
	cache := NewTTLCache[string, int](time.Minute)
	cache.SetTTL("gone", 1, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cache.StartSweeping(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return cache.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestTTLCache_ZeroTTLFallsBackToDefault(t *testing.T) {
	cache := NewTTLCache[string, int](0)
	assert.Equal(t, DefaultTTL, cache.ttl)
}
