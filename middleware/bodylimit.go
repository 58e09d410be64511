package middleware

import (
	"net/http"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
)

// defaultMaxBodySize caps request bodies at 4 MB unless configured otherwise.
const defaultMaxBodySize = 4 << 20

// BodyLimitConfig configures the body size limit middleware.
type BodyLimitConfig struct {
	// Skip bypasses the limit for specific requests
	Skip func(ctx *request.Context) bool
	// MaxSize is the largest accepted body in bytes (default: 4 MB)
	MaxSize int64
}

// BodyLimit rejects requests whose declared body exceeds the default limit.
func BodyLimit() handler.Middleware {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithConfig rejects oversized requests with a structured 413.
// Bodies without a declared length are capped while being read instead.
func BodyLimitWithConfig(cfg BodyLimitConfig) handler.Middleware {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultMaxBodySize
	}

	return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		req := ctx.Request()
		if req.ContentLength > cfg.MaxSize {
			return nil, response.ErrRequestEntityTooLarge.WithDetails(map[string]any{
				"max_bytes": cfg.MaxSize,
			})
		}
		if req.Body != nil {
			req.Body = http.MaxBytesReader(nil, req.Body, cfg.MaxSize)
		}

		return next()
	}
}
