package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// requestIDKey is the context key for storing request IDs within the middleware
// package. A separate key from httpclient's is used to avoid a dependency
// inversion (middleware reads its own key; httpclient reads its own key).
type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
// It also stores the ID via httpclient.WithRequestID so that outbound HTTP
// calls automatically include the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = httpclient.WithRequestID(ctx, id)
	return ctx
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that generates or extracts an X-Request-ID for
// each request. If the incoming request has an X-Request-ID header, it is
// reused; otherwise a new UUID v4 is generated. The ID is stored in the
// request context and set as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = generateID()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// generateID produces a random UUID v4 string.
func generateID() string {
	return uuid.NewString()
}
