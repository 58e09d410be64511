package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"
)

// maxFormMemory bounds how much of a multipart form is held in memory before
// spilling to disk, mirroring the net/http default.
const maxFormMemory = 32 << 20

// bodyBytes reads the raw request body at most once. The buffered bytes back
// every later read, and the request body is restored from the buffer so
// direct consumers still see the full stream.
func (c *Context) bodyBytes() ([]byte, error) {
	c.bodyOnce.Do(func() {
		if c.req.Body == nil {
			return
		}
		buf, err := io.ReadAll(c.req.Body)
		c.req.Body.Close()
		if err != nil {
			c.bodyErr = fmt.Errorf("request: read body: %w", err)
			return
		}
		c.bodyBuf = buf
		c.req.Body = io.NopCloser(bytes.NewReader(buf))
	})
	return c.bodyBuf, c.bodyErr
}

// BodyJSON parses the body as JSON into a generic value. The parse happens at
// most once per request; repeated calls return the identical cached value,
// and concurrent callers share the single underlying read.
func (c *Context) BodyJSON() (any, error) {
	c.jsonOnce.Do(func() {
		buf, err := c.bodyBytes()
		if err != nil {
			c.jsonErr = err
			return
		}
		if len(buf) == 0 {
			c.jsonErr = fmt.Errorf("request: empty body")
			return
		}
		c.jsonErr = json.Unmarshal(buf, &c.jsonVal)
	})
	return c.jsonVal, c.jsonErr
}

// DecodeBody decodes the body as JSON into dest. Decoding runs against the
// cached body bytes, so it can be called by several middlewares without
// consuming the stream more than once.
func (c *Context) DecodeBody(dest any) error {
	buf, err := c.bodyBytes()
	if err != nil {
		return err
	}
	if len(buf) == 0 {
		return fmt.Errorf("request: empty body")
	}
	return json.Unmarshal(buf, dest)
}

// BodyText returns the body as a string, read and cached at most once.
func (c *Context) BodyText() (string, error) {
	c.textOnce.Do(func() {
		buf, err := c.bodyBytes()
		if err != nil {
			c.textErr = err
			return
		}
		c.textVal = string(buf)
	})
	return c.textVal, c.textErr
}

// FormData parses the body as a multipart form. Unlike the JSON and text
// reads this is intentionally uncached: each call re-parses the buffered
// bytes, which is cheap and keeps independent callers independent.
func (c *Context) FormData() (*multipart.Form, error) {
	contentType := c.req.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fmt.Errorf("request: not a multipart body (Content-Type %q)", contentType)
	}
	boundary, ok := params["boundary"]
	if !ok {
		return nil, fmt.Errorf("request: multipart body without boundary")
	}

	buf, err := c.bodyBytes()
	if err != nil {
		return nil, err
	}

	mr := multipart.NewReader(bytes.NewReader(buf), boundary)
	form, err := mr.ReadForm(maxFormMemory)
	if err != nil {
		return nil, fmt.Errorf("request: parse multipart form: %w", err)
	}
	return form, nil
}
