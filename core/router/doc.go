// Package router maps (method, path) pairs to registered routes and extracts
// named path parameters.
//
// Routes are matched strictly in registration order: the first route whose
// method and compiled pattern both match wins. The router performs no
// specificity scoring, so overlapping patterns must be registered
// most-specific-first by the caller.
//
//	r := router.New()
//	r.Get("/todos", listTodos)
//	r.Get("/todos/:id", getTodo)
//	r.Post("/todos", createTodo, authMiddleware)
//
// HEAD requests transparently reuse GET route definitions; a route registered
// for any other method is never a HEAD candidate.
//
// Registration happens only during setup and must not run concurrently with
// matching.
package router
