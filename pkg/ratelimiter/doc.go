// Package ratelimiter provides per-key request rate limiting with
// interchangeable backends: an in-memory token-bucket store for single
// instances and a Redis fixed-window store for fleets sharing one budget.
//
//	limiter := ratelimiter.NewMemory(ratelimiter.Config{
//		Limit:  100,
//		Window: time.Minute,
//	})
//	defer limiter.Close()
//
//	result, err := limiter.Allow(ctx, clientIP)
//	if err != nil {
//		// backend failure, fail open or closed per policy
//	}
//	if !result.Allowed {
//		// reject with Retry-After = result.RetryAfter
//	}
package ratelimiter
