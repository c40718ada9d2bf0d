package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// DrainFunc finishes background work that requests started.
type DrainFunc func(ctx context.Context) error

type drainHook struct {
	name string
	fn   DrainFunc
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithDrain registers work to finish after the listener has stopped and
// in-flight requests have completed, such as notification batches still
// being delivered for mutations that already answered.
func WithDrain(name string, fn DrainFunc) ServerOption {
	return func(s *Server) {
		if fn != nil {
			s.drains = append(s.drains, drainHook{name: name, fn: fn})
		}
	}
}

// Server wraps http.Server with graceful shutdown support.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	drains []drainHook
}

// NewServer creates a new HTTP server from the given config and handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start listens and serves until the server stops. Returns nil on graceful
// shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server",
		slog.String("addr", s.srv.Addr),
		slog.Int("drain_hooks", len(s.drains)),
	)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones, then runs
// every drain hook in registration order, all within ctx's deadline. A
// default 10-second deadline applies when ctx has none. Drain hooks still
// run when the HTTP drain fails; all errors are joined.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("draining requests: %w", err))
	}

	for _, d := range s.drains {
		start := time.Now()
		if err := d.fn(ctx); err != nil {
			s.logger.Error("drain failed", slog.String("hook", d.name), slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("draining %s: %w", d.name, err))
			continue
		}
		s.logger.Info("drained", slog.String("hook", d.name), slog.Duration("took", time.Since(start)))
	}
	return errors.Join(errs...)
}

// Addr returns the server's configured listen address string.
func (s *Server) Addr() string {
	return s.srv.Addr
}
