package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/middleware"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	slowCommit := func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(120 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"raised":100,"version":2}`))
	}

	tests := []struct {
		name        string
		method      string
		timeout     time.Duration
		handler     http.HandlerFunc
		wantStatus  int
		wantBody    string
		wantProblem bool
	}{
		{
			name:    "read answered before the deadline",
			method:  http.MethodGet,
			timeout: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("X-Total-Count", "3")
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:    "read past the deadline gets a problem response",
			method:  http.MethodGet,
			timeout: 30 * time.Millisecond,
			handler: func(_ http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus:  http.StatusGatewayTimeout,
			wantProblem: true,
		},
		{
			name:    "partial read output is replaced on timeout",
			method:  http.MethodGet,
			timeout: 30 * time.Millisecond,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("half"))
				<-r.Context().Done()
			},
			wantStatus:  http.StatusGatewayTimeout,
			wantProblem: true,
		},
		{
			name:       "committed mutation keeps its own answer",
			method:     http.MethodPost,
			timeout:    30 * time.Millisecond,
			handler:    slowCommit,
			wantStatus: http.StatusOK,
			wantBody:   `{"raised":100,"version":2}`,
		},
		{
			name:       "delete keeps its own answer",
			method:     http.MethodDelete,
			timeout:    30 * time.Millisecond,
			handler:    func(w http.ResponseWriter, _ *http.Request) { time.Sleep(60 * time.Millisecond); w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/api/v1/projects/p1", http.NoBody)
			middleware.Timeout(tt.timeout)(tt.handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if !tt.wantProblem {
				return
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			var problem dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("decoding problem: %v (body %q)", err, rec.Body.String())
			}
			if problem.Status != http.StatusGatewayTimeout || strings.Contains(rec.Body.String(), "half") {
				t.Errorf("problem = %+v", problem)
			}
		})
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodGet, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			var hasDeadline bool
			h := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				_, hasDeadline = r.Context().Deadline()
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/api/v1/projects", http.NoBody))

			if !hasDeadline {
				t.Error("handler context has no deadline")
			}
		})
	}
}

func TestTimeout_LateReadWriteFails(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody))

	select {
	case err := <-writeErr:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write() error = %v, want ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
}

func TestTimeout_ReadPanicReachesRecovery(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("listing exploded")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
