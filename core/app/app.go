package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"runtime/debug"

	"github.com/edgekit/edgekit/core/chain"
	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/logger"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
	"github.com/edgekit/edgekit/core/router"
)

// invocationPrefix matches the function-gateway prefix imposed on request
// paths: /functions/v1/<function-name>.
var invocationPrefix = regexp.MustCompile(`^/functions/v1/[^/]+`)

// App owns the global middleware list and the router, and orchestrates the
// handling of one request end to end. Route registration happens only during
// setup, never concurrently with request handling.
type App struct {
	router      *router.Router
	middlewares []handler.Middleware
	onError     handler.ErrorHandler
	logger      *slog.Logger
	ctxOpts     []request.Option
	basePath    string
}

// New creates an application.
func New(opts ...Option) *App {
	a := &App{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	var routerOpts []router.Option
	if a.basePath != "" {
		routerOpts = append(routerOpts, router.WithBasePath(a.basePath))
	}
	a.router = router.New(routerOpts...)
	return a
}

// Use appends global middleware. Must be called before requests are served.
func (a *App) Use(middlewares ...handler.Middleware) {
	a.middlewares = append(a.middlewares, middlewares...)
}

// Handle registers a route on the underlying router.
func (a *App) Handle(method, pattern string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	a.router.Handle(method, pattern, h, middlewares...)
}

// Get registers a GET route (reachable via HEAD as well).
func (a *App) Get(pattern string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	a.router.Get(pattern, h, middlewares...)
}

// Post registers a POST route.
func (a *App) Post(pattern string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	a.router.Post(pattern, h, middlewares...)
}

// Put registers a PUT route.
func (a *App) Put(pattern string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	a.router.Put(pattern, h, middlewares...)
}

// Patch registers a PATCH route.
func (a *App) Patch(pattern string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	a.router.Patch(pattern, h, middlewares...)
}

// Delete registers a DELETE route.
func (a *App) Delete(pattern string, h handler.HandlerFunc, middlewares ...handler.Middleware) {
	a.router.Delete(pattern, h, middlewares...)
}

// Routes returns the registered routes in registration order.
func (a *App) Routes() []router.RouteInfo {
	return a.router.Routes()
}

// Dispatch handles one request and always produces exactly one response:
// a failure anywhere in the chain yields a translated error response, never
// a propagated error.
func (a *App) Dispatch(r *http.Request) *response.Response {
	ctx := request.New(r, a.ctxOpts...)

	resp, err := a.run(ctx, r)
	if err != nil {
		resp = a.handleError(ctx, err)
	}

	// Cross-cutting headers set on the context reach every outgoing
	// response, error and not-found paths included.
	mergeHeaders(ctx.Header(), resp)

	if r.Method == http.MethodHead {
		resp = resp.WithoutBody()
	}
	return resp
}

// ServeHTTP adapts the application to net/http: the surrounding transport
// owns the listener, timeouts, and cancellation.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := a.Dispatch(r)
	if err := resp.Write(w); err != nil {
		a.logger.Error("write response",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
	}
}

// run resolves the path, matches a route, and dispatches the chain. Panics
// anywhere in the chain surface as opaque errors.
func (a *App) run(ctx *request.Context, r *http.Request) (resp *response.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("panic while serving request",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				slog.Any("value", p),
				slog.String("stack", string(debug.Stack())),
			)
			resp, err = nil, fmt.Errorf("panic: %v", p)
		}
	}()

	path := a.effectivePath(r.URL.Path)

	rt, params, ok := a.router.Match(r.Method, path)
	if !ok {
		// Global middleware still runs for unmatched paths so cross-cutting
		// behavior reaches not-found responses; the terminal continuation
		// raises a structured 404 carrying the method and original path.
		notFound := func(*request.Context) (*response.Response, error) {
			return nil, response.ErrNotFound.
				WithMessage(fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
		}
		return chain.New(notFound, a.middlewares...).Run(ctx)
	}

	ctx.SetParams(params)

	middlewares := make([]handler.Middleware, 0, len(a.middlewares)+len(rt.Middlewares))
	middlewares = append(middlewares, a.middlewares...)
	middlewares = append(middlewares, rt.Middlewares...)

	resp, err = chain.New(rt.Handler, middlewares...).Run(ctx)
	if err == nil && resp == nil {
		err = fmt.Errorf("app: nil response from %s %s", rt.Method, rt.Pattern)
	}
	return resp, err
}

// effectivePath strips the platform's invocation prefix unless an explicit
// base path is configured, in which case the URL is used as-is.
func (a *App) effectivePath(path string) string {
	if a.basePath != "" {
		return path
	}
	if loc := invocationPrefix.FindString(path); loc != "" {
		rest := path[len(loc):]
		if rest == "" {
			return "/"
		}
		return rest
	}
	return path
}

// handleError turns an error escaping the chain into a response. The custom
// hook, when present, gets the first chance; its own failure is swallowed in
// favor of default translation rather than crashing the request path.
func (a *App) handleError(ctx *request.Context, err error) *response.Response {
	if a.onError != nil {
		if resp := a.safeOnError(ctx, err); resp != nil {
			return resp
		}
	}
	return response.Translate(err, a.logger)
}

func (a *App) safeOnError(ctx *request.Context, err error) (resp *response.Response) {
	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("error hook panicked", slog.Any("value", p))
			resp = nil
		}
	}()
	return a.onError(ctx, err)
}

// mergeHeaders copies header values onto the response without overriding
// keys the response already carries.
func mergeHeaders(src http.Header, resp *response.Response) {
	for key, values := range src {
		if _, ok := resp.Header[key]; ok {
			continue
		}
		resp.Header[key] = append([]string(nil), values...)
	}
}
