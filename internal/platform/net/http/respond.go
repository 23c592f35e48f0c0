// Package http provides the webhook transport helpers.
//
// Unlike a browser-facing API there is no success envelope here: the voice
// platform expects the response document itself as the body. Only failures
// that never produce a spoken reply get a structured error body.
package http

import (
	"encoding/json"
	stdhttp "net/http"

	lumnet "almanacco/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// If Body is an error, derive status from error before writing
	if err, ok := resp.Body.(error); ok && err != nil {
		reqID := lumnet.RequestID(r.Context())
		status, wire := lumnet.Error(err, reqID)
		JSON(w, status, wire)
		return
	}

	JSON(w, status, resp.Body)
}

// OK returns a 200 response whose body is written as-is
func OK(body any) Response { return Response{Status: stdhttp.StatusOK, Body: body} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and wire body
func Error(err error) Response { return Response{Body: err} }
