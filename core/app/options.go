package app

import (
	"log/slog"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
)

// Option configures an App during creation.
type Option func(*App)

// WithBasePath sets an explicit base path. Route patterns are compiled with
// the prefix baked in, and invocation-prefix auto-stripping is disabled.
func WithBasePath(basePath string) Option {
	return func(a *App) {
		a.basePath = basePath
	}
}

// WithErrorHandler installs a custom error hook. The hook runs before default
// translation; if it panics or returns nil, default handling takes over
// rather than propagating the hook's failure.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(a *App) {
		a.onError = h
	}
}

// WithLogger sets the operational logger used for opaque errors and panics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMiddleware appends global middleware, which run for every request in
// the given order, matched or not.
func WithMiddleware(middlewares ...handler.Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, middlewares...)
	}
}

// WithContextOptions forwards options to every request context the app
// creates, e.g. the data-service environment or a test factory.
func WithContextOptions(opts ...request.Option) Option {
	return func(a *App) {
		a.ctxOpts = append(a.ctxOpts, opts...)
	}
}
