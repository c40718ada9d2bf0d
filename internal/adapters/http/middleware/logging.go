package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID and correlation ID
// from context, stores it via logging.WithLogger for downstream use, and
// logs completion with method, path, status code, and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqID := RequestIDFromContext(ctx)
			corrID := CorrelationIDFromContext(ctx)

			child := logger.With(
				slog.String("request_id", reqID),
				slog.String("correlation_id", corrID),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", attrArgs(RedactHeaders(r.Header))...)
				if len(r.URL.RawQuery) > 0 {
					child.DebugContext(ctx, "request filters", attrArgs(RedactQuery(r.URL.Query()))...)
				}
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", RoutePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func attrArgs(attrs []slog.Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return args
}
