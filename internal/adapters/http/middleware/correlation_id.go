package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/httpclient"
)

const (
	headerCorrelationID  = "X-Correlation-ID"
	maxCorrelationIDSize = 128
)

// correlationIDKey is the context key for storing correlation IDs.
type correlationIDKey struct{}

// WithCorrelationID stores id in ctx for logging and for outbound calls made
// through httpclient, which forward it to the email API.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// CorrelationID returns middleware that carries an X-Correlation-ID through
// the request, its log lines and the notification calls it triggers. A
// caller-supplied ID is reused only if it is at most 128 characters of
// letters, digits and "-_.:/"; otherwise the request ID stands in. The
// chosen ID is echoed in the response.
//
// Must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !validCorrelationID(id) {
				id = RequestIDFromContext(r.Context())
			}
			ctx := WithCorrelationID(r.Context(), id)
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validCorrelationID(id string) bool {
	if id == "" || len(id) > maxCorrelationIDSize {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':', c == '/':
		default:
			return false
		}
	}
	return true
}
