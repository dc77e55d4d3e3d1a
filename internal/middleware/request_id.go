package middleware

import (
	"net/http"

	"starseed-server/internal/shared/response"

	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID propagates the caller's X-Request-ID or assigns a new UUID, and
// echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(response.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
			r.Header.Set(response.RequestIDHeader, id)
		}

		w.Header().Set(response.RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
