// Package request provides the per-request Context that every middleware and
// handler reads and mutates.
//
// A Context is created exactly once per inbound request, is exclusively owned
// by the dispatch chain processing that request, and must not be shared
// across requests or retained after the response is returned.
//
// # Features
//
//   - Path parameters extracted by the router, set once before dispatch
//   - Open key/value state bag for inter-middleware communication
//   - User and validated-payload slots for auth/validation collaborators
//   - Additive response-header set merged into every built response
//   - Memoized body reads: JSON and text are read at most once per request
//   - Lazily constructed data-service handles (standard and elevated)
//   - Response builders for JSON, text, empty, and redirect responses
//
// # Body Reads
//
// The raw body is buffered on first access and every later read is served
// from the buffer, so several middlewares can read the body independently
// without "stream already consumed" failures:
//
//	var payload CreateTodo
//	if err := ctx.DecodeBody(&payload); err != nil {
//		return nil, response.ErrBadRequest.WithMessage("invalid JSON body")
//	}
//
// Multipart form reads intentionally bypass the cache and re-parse the
// buffered bytes on every call.
package request
