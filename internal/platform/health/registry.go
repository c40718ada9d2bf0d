// Package health provides a thread-safe health check registry for the
// service's backing stores and delivery channels (mongo, redis, amqp, the
// email API). The readiness endpoint uses it to decide whether the service
// can accept traffic.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// DefaultCheckTimeout bounds a single checker when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual health check.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness request.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs all registered health checks concurrently, each under the
// registry's per-check timeout, and returns results keyed by checker name.
// Nil values indicate healthy components. When two checkers share a name the
// one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
