// Package app wires the router, the dispatch chain, the request context, and
// the error translator into the end-to-end handling of one request.
//
// # Lifecycle
//
// For every inbound request the application creates a fresh request context,
// resolves the effective path, matches a route, and runs the dispatch chain
// of global middleware, route middleware, and handler. Any error escaping the
// chain is recovered exactly once, here, and translated into a JSON error
// response; the context's response headers reach error responses too. HEAD
// responses are stripped of their body before being returned.
//
//	a := app.New(app.WithMiddleware(middleware.CORS()))
//	a.Get("/todos/:id", getTodo)
//	http.ListenAndServe(":8000", a)
//
// # Path Resolution
//
// Requests arriving through the platform's function gateway carry a
// /functions/v1/<function-name> invocation prefix. When no explicit base
// path is configured the prefix is stripped before matching, so routes are
// written without it. With an explicit base path the URL is used as-is, and
// the base path is baked into the compiled route patterns instead.
package app
