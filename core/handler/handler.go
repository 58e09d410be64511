package handler

import (
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
)

// Next is the continuation a middleware invokes to run the rest of the chain.
// It suspends until the full downstream chain, handler included, has produced
// a response. A middleware must call it at most once.
type Next func() (*response.Response, error)

// HandlerFunc is the terminal step of a dispatch chain. It never receives a
// next continuation.
type HandlerFunc func(ctx *request.Context) (*response.Response, error)

// Middleware wraps the downstream chain with cross-cutting behavior. Identity
// is purely structural: anything with this signature is a middleware.
type Middleware func(ctx *request.Context, next Next) (*response.Response, error)

// ErrorHandler overrides how an error escaping the chain is turned into a
// response. Returning nil falls through to the default translation.
type ErrorHandler func(ctx *request.Context, err error) *response.Response
