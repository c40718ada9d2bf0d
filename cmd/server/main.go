// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/notify/amqp"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/notify/console"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/notify/dedupe"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/notify/email"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/repository/mongostore"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/app"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/lifecycle"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/config"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/health"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/metrics"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout  = 15 * time.Second
	otelShutdownTimeout    = 5 * time.Second
	resourceCloseTimeout   = 5 * time.Second
	storageConnectTimeout  = 10 * time.Second
	emailClientServiceName = "email-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()
	res := &resources{}

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, metrics.New(otel.metrics))

	registerStorage(injector, cfg, res)
	registerNotifier(injector, cfg, logger, res)
	registerService(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		closeResources(logger, res)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range res.checkers {
		registry.Register(checker)
	}

	logger.Info("service wired",
		slog.String("profile", profile),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("notifier", cfg.Notifier.Driver),
		slog.Bool("dedupe", cfg.Redis.Enabled),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeResources(logger, res)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then notification batches,
	// each of which may run for up to the dispatch timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout+cfg.Notifier.DispatchTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Notification batches were drained by Shutdown; release connections
	// before flushing telemetry.
	closeResources(logger, res)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// resources collects what the providers opened: health checkers to
// register and closers to run on shutdown, in reverse order.
type resources struct {
	checkers []ports.HealthChecker
	closers  []func(context.Context) error
}

func (r *resources) check(c ports.HealthChecker) { r.checkers = append(r.checkers, c) }

func (r *resources) onClose(fn func(context.Context) error) { r.closers = append(r.closers, fn) }

func closeResources(logger *slog.Logger, res *resources) {
	ctx, cancel := context.WithTimeout(context.Background(), resourceCloseTimeout)
	defer cancel()

	var errs []error
	for i := len(res.closers) - 1; i >= 0; i-- {
		if err := res.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		logger.Error("closing resources", slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	instruments, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: instruments,
	}, nil
}

func registerStorage(injector *do.RootScope, cfg *config.Config, res *resources) {
	do.Provide(injector, func(_ do.Injector) (ports.ProjectRepository, error) {
		if cfg.Storage.Driver != config.StorageMongo {
			repo := memory.New()
			res.check(repo)
			return repo, nil
		}

		mc := cfg.Storage.Mongo
		ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
		defer cancel()

		client, err := mongostore.Connect(ctx, mc.URI, mc.Timeout)
		if err != nil {
			return nil, err
		}
		res.onClose(client.Disconnect)

		repo := mongostore.New(client.Database(mc.Database).Collection(mc.Collection), mc.Timeout)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		res.check(repo)
		return repo, nil
	})
}

func registerNotifier(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, res *resources) {
	do.Provide(injector, func(i do.Injector) (ports.Notifier, error) {
		base, err := newBaseNotifier(i, cfg, logger, res)
		if err != nil {
			return nil, err
		}
		if !cfg.Redis.Enabled {
			return base, nil
		}

		rc := dedupe.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		res.onClose(func(context.Context) error { return rc.Close() })

		n := dedupe.New(base, rc, cfg.Redis.DedupeTTL, logger)
		res.check(n)
		return n, nil
	})
}

func newBaseNotifier(i do.Injector, cfg *config.Config, logger *slog.Logger, res *resources) (ports.Notifier, error) {
	switch cfg.Notifier.Driver {
	case config.NotifierEmail:
		client := httpclient.New(&cfg.Client, emailClientServiceName, do.MustInvoke[*telemetry.Metrics](i), logger)
		n, err := email.New(client, email.Config{
			From:   cfg.Notifier.From,
			APIKey: cfg.Notifier.APIKey,
		})
		if err != nil {
			return nil, err
		}
		res.check(n)
		return n, nil

	case config.NotifierAMQP:
		p, err := amqp.Dial(cfg.Notifier.AMQP.URL, cfg.Notifier.AMQP.Exchange)
		if err != nil {
			return nil, err
		}
		res.onClose(func(context.Context) error { return p.Close() })
		res.check(p)
		return p, nil

	default:
		return console.New(logger), nil
	}
}

func registerService(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*lifecycle.Engine, error) {
		return lifecycle.New(lifecycle.WithAdminRecipient(cfg.Notifier.AdminEmail)), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Dispatcher, error) {
		notifier := do.MustInvoke[ports.Notifier](i)
		recorder := do.MustInvoke[*metrics.Recorder](i)
		return app.NewDispatcher(notifier, logger,
			app.WithMaxWorkers(cfg.Notifier.MaxWorkers),
			app.WithDispatchTimeout(cfg.Notifier.DispatchTimeout),
			app.WithDispatchRecorder(recorder),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		repo, err := do.Invoke[ports.ProjectRepository](i)
		if err != nil {
			return nil, fmt.Errorf("project repository: %w", err)
		}
		engine := do.MustInvoke[*lifecycle.Engine](i)
		dispatcher, err := do.Invoke[*app.Dispatcher](i)
		if err != nil {
			return nil, fmt.Errorf("notification dispatcher: %w", err)
		}
		recorder := do.MustInvoke[*metrics.Recorder](i)

		return app.NewProjectService(repo, engine, dispatcher, logger,
			app.WithMaxConflictRetries(cfg.Lifecycle.MaxConflictRetries),
			app.WithRecorder(recorder),
		), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc, err := do.Invoke[ports.ProjectService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		// Notification backends degrade readiness; storage gates it.
		return handlers.NewHealthHandler(registry, handlers.WithOptional("redis", "email-api", "amqp")), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH, err := do.Invoke[*handlers.ProjectHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)
		recorder := do.MustInvoke[*metrics.Recorder](i)

		return adapthttp.NewRouter(projH, healthH, recorder.Handler(),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(otelMetrics),
			middleware.Metrics(recorder),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		dispatcher, err := do.Invoke[*app.Dispatcher](i)
		if err != nil {
			return nil, fmt.Errorf("notification dispatcher: %w", err)
		}
		return adapthttp.NewServer(cfg.Server, handler, logger,
			adapthttp.WithDrain("notifications", dispatcher.Drain),
		), nil
	})
}
