package middleware

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/metrics"
)

// unmatchedRoute labels requests that no route matched, keeping raw paths
// out of metric labels.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that observes request latency in the
// Prometheus recorder, labelled by the matched route pattern. A nil
// recorder disables the middleware.
func Metrics(recorder *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			route := RoutePattern(r)
			if route == "" {
				route = unmatchedRoute
			}
			recorder.HTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
