// Package response provides the materialized HTTP response value used across
// the framework, builders for the common response kinds, and the translation
// of errors into JSON error responses.
//
// Unlike frameworks that write directly to an http.ResponseWriter, every
// handler and middleware here returns a *Response value. The dispatch pipeline
// post-processes that value (merging cross-cutting headers, stripping HEAD
// bodies) before it is written out, which is only possible when the response
// is a value rather than a stream.
//
// # Basic Usage
//
//	func listTodos(ctx *request.Context) (*response.Response, error) {
//		todos, err := loadTodos(ctx)
//		if err != nil {
//			return nil, err
//		}
//		return response.JSON(todos)
//	}
//
// # Error Responses
//
// HTTPError carries an explicit status code, a message, and optional
// structured details. It serializes as {"error": ..., "status": ..., "details": ...}:
//
//	return nil, response.ErrNotFound.WithMessage("todo does not exist")
//
// Any other error is treated as opaque: the caller receives a generic 500
// JSON body while the underlying error is logged for diagnosis.
package response
