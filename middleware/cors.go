package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
)

// CORSConfig defines configuration options for the CORS middleware.
type CORSConfig struct {
	// Skip bypasses CORS handling for specific requests
	Skip func(ctx *request.Context) bool

	// AllowOrigins lists allowed origins. Empty or containing "*" allows all.
	AllowOrigins []string

	// AllowMethods lists allowed HTTP methods.
	// Defaults to GET, HEAD, PUT, PATCH, POST, DELETE.
	AllowMethods []string

	// AllowHeaders lists allowed request headers.
	// Defaults to common headers including Authorization and Content-Type.
	AllowHeaders []string

	// ExposeHeaders lists headers exposed to the client.
	ExposeHeaders []string

	// AllowCredentials permits cookies and authorization headers. Ignored
	// with wildcard origins, per the CORS spec.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// CORS returns a CORS middleware with default configuration: all origins,
// common methods and headers, no credentials.
func CORS() handler.Middleware {
	return CORSWithConfig(CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration. It
// answers preflight OPTIONS requests itself and attaches the allow-origin
// headers to the context for every other request, so they propagate to
// success, error, and not-found responses alike.
func CORSWithConfig(cfg CORSConfig) handler.Middleware {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Content-Type",
			"Origin",
			"Authorization",
			"X-Request-ID",
		}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	allowOrigins := make(map[string]bool, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		allowOrigins[origin] = true
	}
	wildcard := len(cfg.AllowOrigins) == 0 || allowOrigins["*"]

	return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		req := ctx.Request()
		origin := req.Header.Get("Origin")

		allowedOrigin := ""
		switch {
		case wildcard:
			allowedOrigin = "*"
		case allowOrigins[origin]:
			allowedOrigin = origin
		}

		// Preflight: OPTIONS plus an Access-Control-Request-Method header.
		if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
			requestMethod := req.Header.Get("Access-Control-Request-Method")
			if allowedOrigin == "" || !slices.Contains(cfg.AllowMethods, requestMethod) {
				return response.New(http.StatusForbidden), nil
			}

			resp := response.NoContent()
			headers := resp.Header
			headers.Set("Access-Control-Allow-Origin", allowedOrigin)
			headers.Set("Access-Control-Allow-Methods", allowMethods)
			if req.Header.Get("Access-Control-Request-Headers") != "" {
				headers.Set("Access-Control-Allow-Headers", allowHeaders)
			}
			if cfg.AllowCredentials && allowedOrigin != "*" {
				headers.Set("Access-Control-Allow-Credentials", "true")
			}
			if cfg.MaxAge > 0 {
				headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
			headers.Add("Vary", "Origin")
			return resp, nil
		}

		if allowedOrigin != "" {
			headers := ctx.Header()
			headers.Set("Access-Control-Allow-Origin", allowedOrigin)
			if cfg.AllowCredentials && allowedOrigin != "*" {
				headers.Set("Access-Control-Allow-Credentials", "true")
			}
			if exposeHeaders != "" {
				headers.Set("Access-Control-Expose-Headers", exposeHeaders)
			}
			headers.Add("Vary", "Origin")
		}

		return next()
	}
}
