package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/dto"
)

// Timeout bounds every request with a deadline carried on its context.
//
// Reads that miss the deadline are answered with a 504 problem response and
// whatever the handler writes afterwards is discarded. Mutations are never
// answered by the middleware: the handler sees the same deadline on its
// store calls and reports the outcome itself, so a write that committed is
// never reported as timed out.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			if !isRead(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(done)
				}()
				next.ServeHTTP(tw, r)
			}()

			select {
			case p := <-panicked:
				// Re-raised here so Recovery, which runs on this goroutine, sees it.
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: no response within %s", context.DeadlineExceeded, timeout))
			}
		})
	}
}

func isRead(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// timeoutWriter buffers a read's response until the handler returns. After
// the deadline fires, writes fail with http.ErrHandlerTimeout.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Must be
// called with tw.mu held.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
