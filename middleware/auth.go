package middleware

import (
	"strings"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
	"github.com/edgekit/edgekit/dataservice"
)

// AuthConfig configures the bearer-token authentication middleware.
type AuthConfig struct {
	// Skip bypasses authentication for specific requests
	Skip func(ctx *request.Context) bool
	// Optional lets unauthenticated requests through with a nil user instead
	// of rejecting them
	Optional bool
}

// Auth creates an authentication middleware with default configuration.
func Auth() handler.Middleware {
	return AuthWithConfig(AuthConfig{})
}

// AuthWithConfig resolves the caller's bearer token through the data
// service's auth endpoint and stores the resulting identity on the context.
// Requests without a valid credential are rejected with a structured 401.
func AuthWithConfig(cfg AuthConfig) handler.Middleware {
	return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		token := bearerToken(ctx)
		if token == "" {
			if cfg.Optional {
				return next()
			}
			return nil, response.ErrUnauthorized.WithMessage("missing bearer token")
		}

		svc, err := ctx.Service()
		if err != nil {
			return nil, err
		}

		user, err := svc.Auth().User(ctx)
		if err != nil {
			if cfg.Optional {
				return next()
			}
			return nil, response.ErrUnauthorized.WithMessage("invalid or expired token")
		}

		ctx.SetUser(user)
		return next()
	}
}

// AuthenticatedUser returns the identity stored by the auth middleware.
func AuthenticatedUser(ctx *request.Context) (*dataservice.User, bool) {
	user, ok := ctx.User().(*dataservice.User)
	return user, ok
}

func bearerToken(ctx *request.Context) string {
	auth := ctx.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}
