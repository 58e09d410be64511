package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/edgekit/edgekit/core/handler"
)

// Route is one registered route: method, pattern, route-scoped middleware in
// invocation order, and the terminal handler. Immutable once registered.
type Route struct {
	Method      string
	Pattern     string
	Middlewares []handler.Middleware
	Handler     handler.HandlerFunc

	matcher *pattern
}

// RouteInfo describes a registered route for introspection.
type RouteInfo struct {
	Method  string
	Pattern string
}

// Router holds the ordered route table. Registration order is match-priority
// order.
type Router struct {
	basePath string
	routes   []*Route
}

// Option configures a Router during creation.
type Option func(*Router)

// WithBasePath prefixes every registered pattern with the given base path, so
// routes are written without it.
func WithBasePath(basePath string) Option {
	return func(r *Router) {
		r.basePath = strings.TrimSuffix(basePath, "/")
	}
}

// New creates a router.
func New(opts ...Option) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BasePath returns the configured base path, or "".
func (r *Router) BasePath() string {
	return r.basePath
}

// Handle registers a route. The handler is the terminal step; middlewares are
// route-scoped and applied in the given order, the last one closest to the
// handler. Panics on an invalid pattern or nil handler, since registration
// happens only during setup.
func (r *Router) Handle(method, pat string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	if h == nil {
		panic(fmt.Sprintf("router: nil handler for %s %s", method, pat))
	}

	compiled, err := compile(r.basePath + pat)
	if err != nil {
		panic(err)
	}

	r.routes = append(r.routes, &Route{
		Method:      strings.ToUpper(method),
		Pattern:     r.basePath + pat,
		Middlewares: middlewares,
		Handler:     h,
		matcher:     compiled,
	})
}

// Get registers a route for GET requests (and, transparently, HEAD).
func (r *Router) Get(pat string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	r.Handle(http.MethodGet, pat, h, middlewares...)
}

// Post registers a route for POST requests.
func (r *Router) Post(pat string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	r.Handle(http.MethodPost, pat, h, middlewares...)
}

// Put registers a route for PUT requests.
func (r *Router) Put(pat string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	r.Handle(http.MethodPut, pat, h, middlewares...)
}

// Patch registers a route for PATCH requests.
func (r *Router) Patch(pat string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	r.Handle(http.MethodPatch, pat, h, middlewares...)
}

// Delete registers a route for DELETE requests.
func (r *Router) Delete(pat string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	r.Handle(http.MethodDelete, pat, h, middlewares...)
}

// Match resolves (method, path) to the first matching route in registration
// order and the parameters extracted from the path. A HEAD request is a
// candidate for GET routes and GET routes only. No match is not an error:
// the third return value reports it and callers decide how to react.
func (r *Router) Match(method, path string) (*Route, map[string]string, bool) {
	method = strings.ToUpper(method)
	for _, rt := range r.routes {
		if rt.Method != method && !(method == http.MethodHead && rt.Method == http.MethodGet) {
			continue
		}
		if params, ok := rt.matcher.match(path); ok {
			return rt, params, true
		}
	}
	return nil, nil, false
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(r.routes))
	for i, rt := range r.routes {
		infos[i] = RouteInfo{Method: rt.Method, Pattern: rt.Pattern}
	}
	return infos
}
