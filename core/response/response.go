package response

import (
	"encoding/json"
	"net/http"
)

// Response is a fully materialized HTTP response: status code, headers, and
// body. Handlers and middleware return it instead of writing to an
// http.ResponseWriter, so the dispatch pipeline can still post-process it.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New creates an empty response with the given status code.
func New(status int) *Response {
	if status == 0 {
		status = http.StatusOK
	}
	return &Response{
		StatusCode: status,
		Header:     make(http.Header),
	}
}

// WithoutBody returns a copy of the response with the body removed but the
// status code and headers intact. Used for HEAD requests, which must never
// carry a body.
func (r *Response) WithoutBody() *Response {
	return &Response{
		StatusCode: r.StatusCode,
		Header:     r.Header.Clone(),
	}
}

// Write renders the response to an http.ResponseWriter.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(r.StatusCode)
	if len(r.Body) > 0 {
		if _, err := w.Write(r.Body); err != nil {
			return err
		}
	}
	return nil
}

// JSON creates an application/json response with 200 OK status.
func JSON(v any) (*Response, error) {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom status code.
func JSONWithStatus(v any, status int) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	resp := New(status)
	resp.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp.Body = body
	return resp, nil
}

// Text creates a text/plain response with 200 OK status.
func Text(content string) *Response {
	return TextWithStatus(content, http.StatusOK)
}

// TextWithStatus creates a text/plain response with a custom status code.
func TextWithStatus(content string, status int) *Response {
	resp := New(status)
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if content != "" {
		resp.Body = []byte(content)
	}
	return resp
}

// NoContent creates a 204 No Content response.
func NoContent() *Response {
	return New(http.StatusNoContent)
}

// Redirect creates a 302 Found redirect response.
func Redirect(url string) *Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectWithStatus creates a redirect with a custom status code.
// The status must be in the 3xx range; anything else falls back to 302.
func RedirectWithStatus(url string, status int) *Response {
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	resp := New(status)
	resp.Header.Set("Location", url)
	return resp
}
