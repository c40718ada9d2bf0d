package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/dto"
)

// errInternalServer is all a client learns about a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a 500 problem
// response. The panic is logged with its stack, the matched route and the
// project it concerned, so a crash on one project can be traced without the
// request body. Nothing is written if the response has already started.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rw.headerWritten),
				}
				if route := RoutePattern(r); route != "" {
					attrs = append(attrs, slog.String("route", route))
				}
				if id := chi.URLParam(r, "projectId"); id != "" {
					attrs = append(attrs, slog.String("project_id", id))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
