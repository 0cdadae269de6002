package controller

import (
	"meetbuddy/pkg/logger"
	"net/http"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that turns a panicking handler into a 500
// response and logs the panic with the request-scoped logger. It must run
// inside WithLogger to log the request ID.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "captured panic in handler",
				zap.Any("panic", p), zap.String("url", r.URL.String()), zap.Stack("stack"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
