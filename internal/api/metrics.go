package api

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// countRequests increments counter once per request, labelled with the
// matched route pattern.
func countRequests(counter metric.Int64Counter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter.Add(r.Context(), 1, metric.WithAttributes(
			attribute.String("route", r.Pattern),
			attribute.String("method", r.Method),
		))
		next.ServeHTTP(w, r)
	})
}
