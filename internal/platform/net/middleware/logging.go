package middleware

import (
	"net/http"

	"almanacco/internal/platform/logger"
	pnet "almanacco/internal/platform/net"
)

// RequestLogger stamps the context so logger.C picks up the request id.
// User id and locale are stamped later, once the envelope is parsed.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithTurn(r.Context(), pnet.RequestID(r.Context()), "", "")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
