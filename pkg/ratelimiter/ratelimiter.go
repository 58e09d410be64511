package ratelimiter

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidConfig reports a non-positive limit or window.
var ErrInvalidConfig = errors.New("ratelimiter: limit and window must be positive")

// Config describes a rate budget: Limit requests per Window, per key.
type Config struct {
	Limit  int
	Window time.Duration
}

func (c Config) validate() error {
	if c.Limit <= 0 || c.Window <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Result reports the outcome of one Allow call.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter is the contract middleware consumes. Implementations must be
// safe for concurrent use.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}
