package request

import (
	"net/http"

	"github.com/edgekit/edgekit/core/response"
)

// JSON builds an application/json response with 200 OK status, carrying the
// context's response headers.
func (c *Context) JSON(v any) (*response.Response, error) {
	return c.JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus builds an application/json response with a custom status.
func (c *Context) JSONWithStatus(v any, status int) (*response.Response, error) {
	resp, err := response.JSONWithStatus(v, status)
	if err != nil {
		return nil, err
	}
	return c.withHeaders(resp), nil
}

// Text builds a text/plain response with 200 OK status.
func (c *Context) Text(content string) (*response.Response, error) {
	return c.TextWithStatus(content, http.StatusOK)
}

// TextWithStatus builds a text/plain response with a custom status.
func (c *Context) TextWithStatus(content string, status int) (*response.Response, error) {
	return c.withHeaders(response.TextWithStatus(content, status)), nil
}

// NoContent builds a 204 No Content response.
func (c *Context) NoContent() (*response.Response, error) {
	return c.withHeaders(response.NoContent()), nil
}

// Redirect builds a 302 Found redirect response.
func (c *Context) Redirect(url string) (*response.Response, error) {
	return c.withHeaders(response.Redirect(url)), nil
}

// RedirectWithStatus builds a redirect with a custom 3xx status code.
func (c *Context) RedirectWithStatus(url string, status int) (*response.Response, error) {
	return c.withHeaders(response.RedirectWithStatus(url, status)), nil
}

// withHeaders copies the context's response headers onto the response without
// overriding headers the builder already set and without mutating the shared
// set, so repeated builder calls within one request stay independent.
func (c *Context) withHeaders(resp *response.Response) *response.Response {
	for key, values := range c.header {
		if _, ok := resp.Header[key]; ok {
			continue
		}
		resp.Header[key] = append([]string(nil), values...)
	}
	return resp
}
