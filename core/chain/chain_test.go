package chain_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/core/chain"
	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
)

func newTestContext(t *testing.T) *request.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	return request.New(req)
}

func TestChainRun(t *testing.T) {
	t.Parallel()

	t.Run("onion ordering", func(t *testing.T) {
		t.Parallel()

		var trace []string

		mw := func(name string) handler.Middleware {
			return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
				trace = append(trace, name+"-before")
				resp, err := next()
				trace = append(trace, name+"-after")
				return resp, err
			}
		}
		terminal := func(ctx *request.Context) (*response.Response, error) {
			trace = append(trace, "handler")
			return response.Text("ok"), nil
		}

		resp, err := chain.New(terminal, mw("A"), mw("B")).Run(newTestContext(t))
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, []string{"A-before", "B-before", "handler", "B-after", "A-after"}, trace)
	})

	t.Run("empty middleware list dispatches straight to terminal", func(t *testing.T) {
		t.Parallel()

		resp, err := chain.New(func(ctx *request.Context) (*response.Response, error) {
			return response.Text("terminal"), nil
		}).Run(newTestContext(t))

		require.NoError(t, err)
		assert.Equal(t, "terminal", string(resp.Body))
	})

	t.Run("second next call fails", func(t *testing.T) {
		t.Parallel()

		double := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			if _, err := next(); err != nil {
				return nil, err
			}
			return next()
		}
		terminal := func(ctx *request.Context) (*response.Response, error) {
			return response.NoContent(), nil
		}

		_, err := chain.New(terminal, double).Run(newTestContext(t))
		assert.ErrorIs(t, err, chain.ErrNextCalledTwice)
	})

	t.Run("second next call fails regardless of position", func(t *testing.T) {
		t.Parallel()

		passthrough := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			return next()
		}
		double := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			next()
			return next()
		}
		terminal := func(ctx *request.Context) (*response.Response, error) {
			return response.NoContent(), nil
		}

		_, err := chain.New(terminal, passthrough, double, passthrough).Run(newTestContext(t))
		assert.ErrorIs(t, err, chain.ErrNextCalledTwice)
	})

	t.Run("terminal error observed by every enclosing frame", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		var observed []string

		observer := func(name string) handler.Middleware {
			return func(ctx *request.Context, next handler.Next) (*response.Response, error) {
				resp, err := next()
				if err != nil {
					observed = append(observed, name)
				}
				return resp, err
			}
		}
		terminal := func(ctx *request.Context) (*response.Response, error) {
			return nil, boom
		}

		_, err := chain.New(terminal, observer("outer"), observer("inner")).Run(newTestContext(t))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"inner", "outer"}, observed)
	})

	t.Run("middleware can recover a downstream error", func(t *testing.T) {
		t.Parallel()

		recoverer := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			if _, err := next(); err != nil {
				return response.TextWithStatus("recovered", http.StatusOK), nil
			}
			return nil, errors.New("expected a failure")
		}
		terminal := func(ctx *request.Context) (*response.Response, error) {
			return nil, errors.New("boom")
		}

		resp, err := chain.New(terminal, recoverer).Run(newTestContext(t))
		require.NoError(t, err)
		assert.Equal(t, "recovered", string(resp.Body))
	})

	t.Run("middleware can short-circuit without calling next", func(t *testing.T) {
		t.Parallel()

		called := false
		shortCircuit := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			return nil, response.ErrUnauthorized
		}
		terminal := func(ctx *request.Context) (*response.Response, error) {
			called = true
			return response.NoContent(), nil
		}

		_, err := chain.New(terminal, shortCircuit).Run(newTestContext(t))
		assert.ErrorIs(t, err, response.ErrUnauthorized)
		assert.False(t, called)
	})

	t.Run("chain is reusable across runs", func(t *testing.T) {
		t.Parallel()

		calls := 0
		counting := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			calls++
			return next()
		}
		c := chain.New(func(ctx *request.Context) (*response.Response, error) {
			return response.NoContent(), nil
		}, counting)

		for i := 0; i < 3; i++ {
			_, err := c.Run(newTestContext(t))
			require.NoError(t, err)
		}
		assert.Equal(t, 3, calls)
	})

	t.Run("nil terminal panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			chain.New(nil)
		})
	})
}
