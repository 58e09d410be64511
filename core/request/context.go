package request

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/edgekit/edgekit/dataservice"
)

// ServiceFactory constructs a data-service client from a config. The default
// is dataservice.New; tests inject a factory returning a pre-built client.
type ServiceFactory func(cfg dataservice.Config) (*dataservice.Client, error)

// Context is the per-request mutable bag shared by the dispatch chain.
// It implements context.Context by delegating to the request's context.
//
// Context is not safe for concurrent use except for the memoized body reads
// and resource accessors, which share a single underlying operation between
// concurrent callers.
type Context struct {
	req    *http.Request
	method string
	url    *url.URL

	params map[string]string
	header http.Header

	mu        sync.Mutex
	state     map[any]any
	user      any
	validated any

	bodyOnce sync.Once
	bodyBuf  []byte
	bodyErr  error

	jsonOnce sync.Once
	jsonVal  any
	jsonErr  error

	textOnce sync.Once
	textVal  string
	textErr  error

	svcOnce sync.Once
	svc     *dataservice.Client
	svcErr  error

	adminOnce sync.Once
	admin     *dataservice.Client
	adminErr  error

	env     dataservice.EnvConfig
	factory ServiceFactory
}

// Option configures a Context during creation.
type Option func(*Context)

// WithServiceEnv supplies the environment configuration used to construct
// data-service clients lazily.
func WithServiceEnv(env dataservice.EnvConfig) Option {
	return func(c *Context) {
		c.env = env
	}
}

// WithServiceFactory overrides how data-service clients are constructed.
// This is the injection point for substituting clients in tests.
func WithServiceFactory(f ServiceFactory) Option {
	return func(c *Context) {
		if f != nil {
			c.factory = f
		}
	}
}

// New creates a fresh Context for one inbound request.
func New(r *http.Request, opts ...Option) *Context {
	c := &Context{
		req:     r,
		method:  r.Method,
		url:     r.URL,
		header:  make(http.Header),
		factory: dataservice.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deadline implements context.Context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.req.Context().Deadline()
}

// Done implements context.Context.
func (c *Context) Done() <-chan struct{} {
	return c.req.Context().Done()
}

// Err implements context.Context.
func (c *Context) Err() error {
	return c.req.Context().Err()
}

// Value returns a value from the state bag, falling back to the request's
// context for keys not set via SetValue.
func (c *Context) Value(key any) any {
	c.mu.Lock()
	v, ok := c.state[key]
	c.mu.Unlock()
	if ok {
		return v
	}
	return c.req.Context().Value(key)
}

// SetValue stores a value in the request-scoped state bag.
func (c *Context) SetValue(key, val any) {
	c.mu.Lock()
	if c.state == nil {
		c.state = make(map[any]any)
	}
	c.state[key] = val
	c.mu.Unlock()
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request {
	return c.req
}

// Method returns the request method.
func (c *Context) Method() string {
	return c.method
}

// URL returns the parsed request URL.
func (c *Context) URL() *url.URL {
	return c.url
}

// Param returns the value of the named path parameter, or "" when absent.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// Query returns the first query-string value for the given key.
func (c *Context) Query(key string) string {
	return c.url.Query().Get(key)
}

// SetParams assigns the path parameters extracted by the router. It is called
// exactly once, before any middleware runs; calling it again panics.
func (c *Context) SetParams(params map[string]string) {
	if c.params != nil {
		panic("request: params already set")
	}
	if params == nil {
		params = map[string]string{}
	}
	c.params = params
}

// Header returns the response-header set for this request. Headers added here
// are merged into every response built for the request, error paths included.
// The set is additive; it is never replaced wholesale mid-request.
func (c *Context) Header() http.Header {
	return c.header
}

// User returns the identity set by an authentication collaborator, or nil.
func (c *Context) User() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// SetUser records the authenticated identity for this request.
func (c *Context) SetUser(user any) {
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
}

// Validated returns the payload set by a validation collaborator, or nil.
func (c *Context) Validated() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validated
}

// SetValidated records the validated payload for this request.
func (c *Context) SetValidated(v any) {
	c.mu.Lock()
	c.validated = v
	c.mu.Unlock()
}
