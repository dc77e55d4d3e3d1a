package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"starseed-server/internal/shared/errors"
	"starseed-server/internal/shared/response"
)

// Recovery turns a handler panic into a 500 response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger := slog.With("middleware", "recovery")
			err := errors.WrapInternal("handler panicked", fmt.Errorf("%v", rec))
			response.ErrorWithMessage(w, r, logger, err, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
