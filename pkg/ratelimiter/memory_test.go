package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/pkg/ratelimiter"
)

func TestMemoryAllow(t *testing.T) {
	t.Parallel()

	t.Run("allows up to the limit", func(t *testing.T) {
		t.Parallel()

		m := ratelimiter.NewMemory(ratelimiter.Config{Limit: 3, Window: time.Minute},
			ratelimiter.WithCleanupInterval(0))

		for i := 0; i < 3; i++ {
			result, err := m.Allow(context.Background(), "key")
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should pass", i+1)
			assert.Equal(t, 3, result.Limit)
		}

		result, err := m.Allow(context.Background(), "key")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Greater(t, result.RetryAfter, time.Duration(0))
	})

	t.Run("keys do not share budgets", func(t *testing.T) {
		t.Parallel()

		m := ratelimiter.NewMemory(ratelimiter.Config{Limit: 1, Window: time.Minute},
			ratelimiter.WithCleanupInterval(0))

		first, err := m.Allow(context.Background(), "a")
		require.NoError(t, err)
		assert.True(t, first.Allowed)

		second, err := m.Allow(context.Background(), "b")
		require.NoError(t, err)
		assert.True(t, second.Allowed)
	})

	t.Run("remaining decreases with each request", func(t *testing.T) {
		t.Parallel()

		m := ratelimiter.NewMemory(ratelimiter.Config{Limit: 5, Window: time.Hour},
			ratelimiter.WithCleanupInterval(0))

		first, err := m.Allow(context.Background(), "key")
		require.NoError(t, err)
		second, err := m.Allow(context.Background(), "key")
		require.NoError(t, err)

		assert.Greater(t, first.Remaining, second.Remaining)
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		t.Parallel()

		m := ratelimiter.NewMemory(ratelimiter.Config{Limit: 2, Window: 100 * time.Millisecond},
			ratelimiter.WithCleanupInterval(0))

		for i := 0; i < 2; i++ {
			result, err := m.Allow(context.Background(), "key")
			require.NoError(t, err)
			require.True(t, result.Allowed)
		}

		denied, err := m.Allow(context.Background(), "key")
		require.NoError(t, err)
		require.False(t, denied.Allowed)

		time.Sleep(denied.RetryAfter + 10*time.Millisecond)

		recovered, err := m.Allow(context.Background(), "key")
		require.NoError(t, err)
		assert.True(t, recovered.Allowed)
	})

	t.Run("invalid config panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			ratelimiter.NewMemory(ratelimiter.Config{Limit: 0, Window: time.Minute})
		})
		assert.Panics(t, func() {
			ratelimiter.NewMemory(ratelimiter.Config{Limit: 10, Window: 0})
		})
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		m := ratelimiter.NewMemory(ratelimiter.Config{Limit: 1, Window: time.Minute})
		m.Close()
		m.Close()

		// Still usable after the janitor stops.
		result, err := m.Allow(context.Background(), "key")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})
}

func TestMemoryConcurrent(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("skipping concurrency test in short mode")
	}

	const (
		limit      = 50
		goroutines = 200
	)

	m := ratelimiter.NewMemory(ratelimiter.Config{Limit: limit, Window: time.Hour},
		ratelimiter.WithCleanupInterval(0))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := m.Allow(context.Background(), "shared")
			if !assert.NoError(t, err) {
				return
			}
			if result.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, allowed)
}
