package middleware

import (
	"log/slog"
	"time"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/logger"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip bypasses logging for specific requests, e.g. health checks
	Skip func(ctx *request.Context) bool
	// Logger receives the log records (default: slog.Default())
	Logger *slog.Logger
	// SlowRequestThreshold escalates requests slower than this to warning level.
	// Zero disables the escalation.
	SlowRequestThreshold time.Duration
}

// Logging creates a request logging middleware writing to the given logger.
func Logging(logger *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: logger})
}

// LoggingWithConfig logs one structured record per request with method,
// path, status, and duration. Failed requests are observed through the onion
// unwind and logged at error level with the error attached.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		start := time.Now()
		resp, err := next()
		duration := time.Since(start)

		attrs := []any{
			logger.Method(ctx.Method()),
			logger.Path(ctx.URL().Path),
			logger.Duration(duration),
		}
		if id, ok := GetRequestID(ctx); ok {
			attrs = append(attrs, logger.RequestID(id))
		}

		switch {
		case err != nil:
			attrs = append(attrs, logger.Error(err))
			cfg.Logger.Error("request failed", attrs...)
		case cfg.SlowRequestThreshold > 0 && duration >= cfg.SlowRequestThreshold:
			attrs = append(attrs, logger.Status(resp.StatusCode))
			cfg.Logger.Warn("slow request", attrs...)
		default:
			attrs = append(attrs, logger.Status(resp.StatusCode))
			cfg.Logger.Info("request", attrs...)
		}

		return resp, err
	}
}
