package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/core/handler"
	"github.com/edgekit/edgekit/core/request"
	"github.com/edgekit/edgekit/core/response"
	"github.com/edgekit/edgekit/core/router"
)

func okHandler(ctx *request.Context) (*response.Response, error) {
	return response.NoContent(), nil
}

func TestRouterMatch(t *testing.T) {
	t.Parallel()

	t.Run("named parameter extraction", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/:id", okHandler)

		rt, params, ok := r.Match(http.MethodGet, "/users/42")
		require.True(t, ok)
		assert.Equal(t, "/users/:id", rt.Pattern)
		assert.Equal(t, map[string]string{"id": "42"}, params)
	})

	t.Run("missing segment does not match", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/:id", okHandler)

		_, _, ok := r.Match(http.MethodGet, "/users")
		assert.False(t, ok)
	})

	t.Run("extra segment does not match", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/:id", okHandler)

		_, _, ok := r.Match(http.MethodGet, "/users/42/posts")
		assert.False(t, ok)
	})

	t.Run("multiple parameters", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/:userID/posts/:postID", okHandler)

		_, params, ok := r.Match(http.MethodGet, "/users/7/posts/99")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"userID": "7", "postID": "99"}, params)
	})

	t.Run("optional trailing parameter omitted when absent", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/todos/:id?", okHandler)

		_, params, ok := r.Match(http.MethodGet, "/todos")
		require.True(t, ok)
		assert.NotContains(t, params, "id")

		_, params, ok = r.Match(http.MethodGet, "/todos/5")
		require.True(t, ok)
		assert.Equal(t, "5", params["id"])
	})

	t.Run("method must match", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Post("/todos", okHandler)

		_, _, ok := r.Match(http.MethodGet, "/todos")
		assert.False(t, ok)
	})

	t.Run("HEAD reuses GET routes", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/todos", okHandler)

		_, _, ok := r.Match(http.MethodHead, "/todos")
		assert.True(t, ok)

		_, _, ok = r.Match(http.MethodHead, "/missing")
		assert.False(t, ok)
	})

	t.Run("HEAD never matches POST-only routes", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Post("/todos", okHandler)

		_, _, ok := r.Match(http.MethodHead, "/todos")
		assert.False(t, ok)
	})

	t.Run("first registered route wins", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/todos/special", okHandler)
		r.Get("/todos/:id", okHandler)

		rt, params, ok := r.Match(http.MethodGet, "/todos/special")
		require.True(t, ok)
		assert.Equal(t, "/todos/special", rt.Pattern)
		assert.Empty(t, params)
	})

	t.Run("registration order beats specificity", func(t *testing.T) {
		t.Parallel()

		// The router performs no specificity scoring: the wildcard route
		// registered first shadows the literal one.
		r := router.New()
		r.Get("/todos/:id", okHandler)
		r.Get("/todos/special", okHandler)

		rt, _, ok := r.Match(http.MethodGet, "/todos/special")
		require.True(t, ok)
		assert.Equal(t, "/todos/:id", rt.Pattern)
	})

	t.Run("trailing wildcard", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/static/*", okHandler)

		_, _, ok := r.Match(http.MethodGet, "/static/css/site.css")
		assert.True(t, ok)
	})

	t.Run("trailing slash is ignored", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/todos", okHandler)

		_, _, ok := r.Match(http.MethodGet, "/todos/")
		assert.True(t, ok)
	})

	t.Run("no match yields ok=false, not an error", func(t *testing.T) {
		t.Parallel()

		r := router.New()

		rt, params, ok := r.Match(http.MethodGet, "/anything")
		assert.False(t, ok)
		assert.Nil(t, rt)
		assert.Nil(t, params)
	})
}

func TestRouterBasePath(t *testing.T) {
	t.Parallel()

	r := router.New(router.WithBasePath("/api/v1"))
	r.Get("/todos/:id", okHandler)

	_, params, ok := r.Match(http.MethodGet, "/api/v1/todos/3")
	require.True(t, ok)
	assert.Equal(t, "3", params["id"])

	_, _, ok = r.Match(http.MethodGet, "/todos/3")
	assert.False(t, ok)
}

func TestRouterRegistration(t *testing.T) {
	t.Parallel()

	t.Run("route middleware preserved in order", func(t *testing.T) {
		t.Parallel()

		mw := func(ctx *request.Context, next handler.Next) (*response.Response, error) {
			return next()
		}

		r := router.New()
		r.Post("/todos", okHandler, mw, mw)

		rt, _, ok := r.Match(http.MethodPost, "/todos")
		require.True(t, ok)
		assert.Len(t, rt.Middlewares, 2)
	})

	t.Run("nil handler panics", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Get("/todos", nil)
		})
	})

	t.Run("invalid pattern panics", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Get("todos", okHandler)
		})
	})

	t.Run("duplicate parameter panics", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Get("/a/:id/b/:id", okHandler)
		})
	})

	t.Run("wildcard not last panics", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Get("/a/*/b", okHandler)
		})
	})

	t.Run("Routes reports registration order", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/a", okHandler)
		r.Post("/b", okHandler)

		infos := r.Routes()
		require.Len(t, infos, 2)
		assert.Equal(t, router.RouteInfo{Method: http.MethodGet, Pattern: "/a"}, infos[0])
		assert.Equal(t, router.RouteInfo{Method: http.MethodPost, Pattern: "/b"}, infos[1])
	})
}
