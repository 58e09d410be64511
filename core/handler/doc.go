// Package handler defines the shared contracts for request processing: the
// terminal handler, the middleware signature, and the next-continuation.
//
// # Middleware Contract
//
// A middleware receives the request context and a next continuation. It may
// run logic before and/or after calling next, must call next at most once,
// and may return an error to short-circuit the chain:
//
//	func Timing(ctx *request.Context, next handler.Next) (*response.Response, error) {
//		start := time.Now()
//		resp, err := next()
//		log.Printf("took %s", time.Since(start))
//		return resp, err
//	}
//
// Errors are expected to propagate rather than be swallowed: the onion unwind
// is the only mechanism by which "after" logic observes downstream failures,
// and recovery happens exactly once, at the application boundary.
package handler
