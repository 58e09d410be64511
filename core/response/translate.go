package response

import (
	"errors"
	"log/slog"
	"net/http"
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// Translate classifies an error and produces the JSON response for it.
//
// Structured errors (HTTPError, or any error exposing StatusCode) are
// serialized verbatim with their own status code. Everything else is opaque:
// the response degrades to a 500 with a best-effort message, and the
// underlying error is written to the operational log instead of the client.
//
// Translate never returns nil; every error yields exactly one response.
func Translate(err error, logger *slog.Logger) *Response {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return renderError(httpErr)
	}

	if sc, ok := err.(statusCode); ok {
		return renderError(NewHTTPError(sc.StatusCode(), err.Error()))
	}

	if logger != nil {
		logger.Error("unhandled error", slog.Any("error", err))
	}

	msg := err.Error()
	if msg == "" {
		msg = http.StatusText(http.StatusInternalServerError)
	}
	return renderError(NewHTTPError(http.StatusInternalServerError, msg))
}

// renderError serializes an HTTPError as JSON. Marshal failures can only come
// from the Details payload, so the error is retried without it.
func renderError(e HTTPError) *Response {
	resp, err := JSONWithStatus(e, e.Status)
	if err != nil {
		e.Details = nil
		resp, _ = JSONWithStatus(e, e.Status)
	}
	return resp
}
