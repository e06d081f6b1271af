package http

import (
	"context"
	"net/http"
)

// withTimeout bounds the request context. It never writes to w: a handler
// whose store call hits the deadline answers through writeError, so the
// response carries the mapped 503 and nothing else.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
