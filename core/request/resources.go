package request

import (
	"errors"

	"github.com/edgekit/edgekit/dataservice"
)

// ErrAdminKeyMissing is returned by Admin when the elevated credential is not
// configured in the environment.
var ErrAdminKeyMissing = errors.New("request: admin credential is not configured")

// Service returns the data-service client acting with the caller's
// credentials. The client is constructed on first access from the request's
// Authorization header and memoized for the lifetime of the context; later
// calls return the identical handle.
func (c *Context) Service() (*dataservice.Client, error) {
	c.svcOnce.Do(func() {
		cfg := dataservice.Config{
			BaseURL:       c.env.URL,
			APIKey:        c.env.AnonKey,
			Authorization: c.req.Header.Get("Authorization"),
		}
		c.svc, c.svcErr = c.factory(cfg)
	})
	return c.svc, c.svcErr
}

// Admin returns the data-service client acting with the elevated
// environment-scoped credential, bypassing caller-level access rules. It
// fails with ErrAdminKeyMissing when the credential is absent, and is
// memoized the same way Service is.
func (c *Context) Admin() (*dataservice.Client, error) {
	c.adminOnce.Do(func() {
		if c.env.AdminKey == "" {
			c.adminErr = ErrAdminKeyMissing
			return
		}
		cfg := dataservice.Config{
			BaseURL: c.env.URL,
			APIKey:  c.env.AdminKey,
		}
		c.admin, c.adminErr = c.factory(cfg)
	})
	return c.admin, c.adminErr
}
