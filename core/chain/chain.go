package chain

import (
	"errors"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
)

var (
	// ErrNextCalledTwice reports a middleware frame whose next() continuation
	// was invoked more than once.
	ErrNextCalledTwice = errors.New("chain: next() invoked multiple times within one middleware frame")

	// ErrNilHandler reports a chain built without a terminal handler.
	ErrNilHandler = errors.New("chain: terminal handler is required")
)

// Chain is an immutable middleware list plus terminal handler. A single Chain
// may be run many times; each Run gets its own dispatch cursor.
type Chain struct {
	middlewares []handler.Middleware
	terminal    handler.HandlerFunc
}

// New builds a chain. Middleware order is invocation order: the first
// middleware is the outermost wrapping, the last is closest to the handler.
func New(terminal handler.HandlerFunc, middlewares ...handler.Middleware) *Chain {
	if terminal == nil {
		panic(ErrNilHandler)
	}
	return &Chain{
		middlewares: middlewares,
		terminal:    terminal,
	}
}

// Run dispatches the chain over the given context. An empty middleware list
// dispatches straight to the terminal handler.
func (c *Chain) Run(ctx *request.Context) (*response.Response, error) {
	d := &dispatcher{chain: c, ctx: ctx, cursor: -1}
	return d.dispatch(0)
}

// dispatcher holds the per-run cursor. The cursor is a high-water mark over
// dispatched indexes: dispatching an index at or below it means some frame's
// next() ran twice.
type dispatcher struct {
	chain  *Chain
	ctx    *request.Context
	cursor int
}

func (d *dispatcher) dispatch(i int) (*response.Response, error) {
	if i <= d.cursor {
		return nil, ErrNextCalledTwice
	}
	d.cursor = i

	if i < len(d.chain.middlewares) {
		next := func() (*response.Response, error) {
			return d.dispatch(i + 1)
		}
		return d.chain.middlewares[i](d.ctx, next)
	}
	return d.chain.terminal(d.ctx)
}
