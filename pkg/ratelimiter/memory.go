package ratelimiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// staleAfter is how many windows a bucket may sit unused before the janitor
// removes it.
const staleAfter = 3

// bucket pairs a token-bucket limiter with its last access time, so the
// janitor can identify stale entries.
type bucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Memory is an in-memory RateLimiter. Each key gets its own token bucket
// refilled at Limit/Window; a background janitor evicts buckets that have
// not been touched for several windows.
type Memory struct {
	cfg Config

	mu      sync.Mutex
	buckets map[string]*bucket

	done chan struct{}
	once sync.Once
}

// MemoryOption configures a Memory limiter.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	cleanupInterval time.Duration
}

// WithCleanupInterval sets how often stale buckets are evicted.
// Zero disables the janitor.
func WithCleanupInterval(interval time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = interval
	}
}

// NewMemory creates an in-memory limiter. Panics on an invalid config, since
// limiters are constructed during setup.
func NewMemory(cfg Config, opts ...MemoryOption) *Memory {
	if err := cfg.validate(); err != nil {
		panic(err)
	}

	o := memoryOptions{cleanupInterval: time.Minute}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Memory{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	if o.cleanupInterval > 0 {
		go m.janitor(o.cleanupInterval)
	}
	return m
}

// Allow consumes one token for the key.
func (m *Memory) Allow(_ context.Context, key string) (*Result, error) {
	now := time.Now()

	m.mu.Lock()
	b, ok := m.buckets[key]
	if !ok {
		limit := rate.Every(m.cfg.Window / time.Duration(m.cfg.Limit))
		b = &bucket{limiter: rate.NewLimiter(limit, m.cfg.Limit)}
		m.buckets[key] = b
	}
	b.lastAccess = now
	m.mu.Unlock()

	rsv := b.limiter.ReserveN(now, 1)
	if delay := rsv.DelayFrom(now); delay > 0 {
		rsv.CancelAt(now)
		return &Result{
			Allowed:    false,
			Limit:      m.cfg.Limit,
			RetryAfter: delay,
		}, nil
	}

	return &Result{
		Allowed:   true,
		Limit:     m.cfg.Limit,
		Remaining: int(b.limiter.TokensAt(now)),
	}, nil
}

// Close stops the janitor. The limiter remains usable afterwards.
func (m *Memory) Close() {
	m.once.Do(func() {
		close(m.done)
	})
}

func (m *Memory) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			cutoff := now.Add(-time.Duration(staleAfter) * m.cfg.Window)
			m.mu.Lock()
			for key, b := range m.buckets {
				if b.lastAccess.Before(cutoff) {
					delete(m.buckets, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
