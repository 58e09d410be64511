// Package middleware provides cross-cutting middlewares built on the core
// middleware contract: CORS, request IDs, structured logging, rate limiting,
// body-size limits, and bearer-token authentication.
//
// Every middleware follows the same shape: a zero-config constructor with
// sensible defaults and a WithConfig variant taking a Config struct. Configs
// support a Skip predicate to bypass the middleware per request.
//
//	a := app.New(app.WithMiddleware(
//		middleware.RequestID(),
//		middleware.Logging(logger),
//		middleware.CORS(),
//	))
//
// Middlewares that attach response headers do so through the request
// context's header set, so the headers also reach error and not-found
// responses produced after the chain unwinds.
package middleware
