package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandlerOption configures a HealthHandler.
type HealthHandlerOption func(*HealthHandler)

// WithOptional marks checkers whose failure degrades readiness without
// failing it.
func WithOptional(names ...string) HealthHandlerOption {
	return func(h *HealthHandler) {
		for _, n := range names {
			h.optional[n] = true
		}
	}
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a HealthHandler over the given registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthHandlerOption) *HealthHandler {
	h := &HealthHandler{registry: registry, optional: map[string]bool{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready.
//
//	all checks pass            200 ready
//	only optional checks fail  200 degraded
//	a required check fails     503 not_ready
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	var degraded []string
	required := true
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = statusOK
		case h.optional[name]:
			checks[name] = err.Error()
			degraded = append(degraded, name)
		default:
			checks[name] = err.Error()
			required = false
		}
	}

	body := map[string]any{"checks": checks}
	code := http.StatusOK
	switch {
	case !required:
		body["status"] = statusNotReady
		code = http.StatusServiceUnavailable
	case len(degraded) > 0:
		body["status"] = statusDegraded
		body["degraded"] = len(degraded)
	default:
		body["status"] = statusReady
	}

	writeJSON(w, code, body)
}
