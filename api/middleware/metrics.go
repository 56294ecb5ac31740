package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edupaylabs/edupay-backend/pkg/metrics"
)

// Metrics records per-route request counts and latency. Route labels come
// from the chi pattern so path parameters do not explode cardinality.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			route := chi.RouteContext(r.Context()).RoutePattern()
			m.Observe(r.Method, route, rec.status, time.Since(start))
		})
	}
}
