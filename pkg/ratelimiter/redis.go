package ratelimiter

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window RateLimiter backed by a shared Redis instance, for
// deployments where several replicas must share one budget per key.
type Redis struct {
	client *redis.Client
	cfg    Config
	prefix string
}

// NewRedis creates a Redis-backed limiter. Panics on an invalid config.
func NewRedis(client *redis.Client, cfg Config) *Redis {
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return &Redis{
		client: client,
		cfg:    cfg,
		prefix: "ratelimit:",
	}
}

// Allow increments the key's window counter and compares it to the limit.
// The first hit in a window sets the expiry; the window never slides.
func (r *Redis) Allow(ctx context.Context, key string) (*Result, error) {
	redisKey := r.prefix + key

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("ratelimiter: incr %q: %w", key, err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, r.cfg.Window).Err(); err != nil {
			return nil, fmt.Errorf("ratelimiter: expire %q: %w", key, err)
		}
	}

	if count > int64(r.cfg.Limit) {
		ttl, err := r.client.TTL(ctx, redisKey).Result()
		if err != nil || ttl < 0 {
			ttl = r.cfg.Window
		}
		return &Result{
			Allowed:    false,
			Limit:      r.cfg.Limit,
			RetryAfter: ttl,
		}, nil
	}

	return &Result{
		Allowed:   true,
		Limit:     r.cfg.Limit,
		Remaining: r.cfg.Limit - int(count),
	}, nil
}
