package middleware

import (
	"net"
	"strconv"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
	"github.com/edgekit/edgekit/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip bypasses rate limiting for specific requests
	Skip func(ctx *request.Context) bool
	// Limiter is the rate limiting backend (required)
	Limiter ratelimiter.RateLimiter
	// KeyExtractor derives the rate limiting key (default: client IP)
	KeyExtractor func(ctx *request.Context) string
	// SetHeaders attaches X-RateLimit-* headers to responses
	SetHeaders bool
}

// RateLimit enforces per-key request budgets and rejects requests over the
// limit with a structured 429 carrying a Retry-After header. Panics without
// a limiter, since middleware is constructed during setup.
func RateLimit(cfg RateLimitConfig) handler.Middleware {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = clientIP
	}

	return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		result, err := cfg.Limiter.Allow(ctx, cfg.KeyExtractor(ctx))
		if err != nil {
			return nil, err
		}

		if cfg.SetHeaders {
			headers := ctx.Header()
			headers.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			headers.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		}

		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds()) + 1
			ctx.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			return nil, response.ErrTooManyRequests.WithDetails(map[string]any{
				"retry_after_seconds": retryAfter,
			})
		}

		return next()
	}
}

// clientIP extracts the remote IP, without port, as the default rate key.
func clientIP(ctx *request.Context) string {
	host, _, err := net.SplitHostPort(ctx.Request().RemoteAddr)
	if err != nil {
		return ctx.Request().RemoteAddr
	}
	return host
}
