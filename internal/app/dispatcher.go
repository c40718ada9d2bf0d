package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/app/fanout"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// Dispatch defaults.
const (
	DefaultDispatchWorkers = 4
	DefaultDispatchTimeout = 10 * time.Second
)

// Recorder receives lifecycle outcome counts. Implemented by the platform
// metrics package.
type Recorder interface {
	Mutation(ctx context.Context, operation, result string)
	ConflictRetry(ctx context.Context, operation string)
	Notification(ctx context.Context, kind, result string)
}

type nopRecorder struct{}

func (nopRecorder) Mutation(context.Context, string, string)     {}
func (nopRecorder) ConflictRetry(context.Context, string)        {}
func (nopRecorder) Notification(context.Context, string, string) {}

// Result label values shared with the metrics recorder.
const (
	resultSuccess = "success"
	resultError   = "error"
	resultNoop    = "skipped"
)

// Dispatcher delivers committed notification events. Events are delivered
// in order; the messages of one event go out concurrently through a
// bounded worker pool. Failures are logged and counted, never returned.
//
// Go hands a batch to a background goroutine so that callers answer as soon
// as their write has committed; Drain waits for those batches on shutdown.
type Dispatcher struct {
	notifier   ports.Notifier
	logger     *slog.Logger
	recorder   Recorder
	maxWorkers int
	timeout    time.Duration

	mu       sync.Mutex
	draining bool
	inflight sync.WaitGroup
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithMaxWorkers bounds concurrent deliveries per event.
func WithMaxWorkers(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxWorkers = n
		}
	}
}

// WithDispatchTimeout bounds the total time spent delivering one batch.
func WithDispatchTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithDispatchRecorder sets the recorder for delivery outcomes.
func WithDispatchRecorder(r Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		if r != nil {
			d.recorder = r
		}
	}
}

// NewDispatcher creates a Dispatcher over the given notifier.
func NewDispatcher(notifier ports.Notifier, logger *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		notifier:   notifier,
		logger:     logger,
		recorder:   nopRecorder{},
		maxWorkers: DefaultDispatchWorkers,
		timeout:    DefaultDispatchTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch delivers every event and returns the number of failed
// deliveries. The batch is detached from ctx's cancellation so that a
// finished request does not abort it, but it is bounded by the dispatch
// timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, events []notification.Event) int {
	if len(events) == 0 {
		return 0
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	failed := 0
	for _, ev := range events {
		msgs := ev.Messages()
		if len(msgs) == 0 {
			d.recorder.Notification(ctx, ev.Kind.String(), resultNoop)
			d.logger.DebugContext(ctx, "notification has no recipients",
				slog.String("kind", ev.Kind.String()),
				slog.String("project_id", ev.ProjectID),
			)
			continue
		}

		errs := fanout.Each(ctx, d.maxWorkers, msgs, d.notifier.Notify)
		for i, err := range errs {
			if err == nil {
				d.recorder.Notification(ctx, ev.Kind.String(), resultSuccess)
				continue
			}
			failed++
			d.recorder.Notification(ctx, ev.Kind.String(), resultError)
			d.logger.WarnContext(ctx, "notification delivery failed",
				slog.String("kind", ev.Kind.String()),
				slog.String("project_id", ev.ProjectID),
				slog.String("message_id", msgs[i].ID),
				slog.String("recipient", msgs[i].Recipient),
				slog.Any("error", deliveryError(err)),
			)
		}
	}

	return failed
}

// Go delivers events in the background and returns immediately. The batch
// keeps ctx's values but not its cancellation. After Drain has begun, Go
// delivers inline instead so that late batches are not lost.
func (d *Dispatcher) Go(ctx context.Context, events []notification.Event) {
	if len(events) == 0 {
		return
	}

	d.mu.Lock()
	if d.draining {
		d.mu.Unlock()
		d.deliver(ctx, events)
		return
	}
	d.inflight.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.inflight.Done()
		d.deliver(ctx, events)
	}()
}

// Wait blocks until every batch started with Go has finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for notification batches: %w", ctx.Err())
	}
}

// Drain stops accepting background batches and waits for the in-flight ones.
func (d *Dispatcher) Drain(ctx context.Context) error {
	d.mu.Lock()
	d.draining = true
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "draining notification batches")
	return d.Wait(ctx)
}

func (d *Dispatcher) deliver(ctx context.Context, events []notification.Event) {
	if failed := d.Dispatch(ctx, events); failed > 0 {
		d.logger.WarnContext(ctx, "some notifications were not delivered",
			slog.Int("failed", failed),
			slog.Any("kinds", notification.Kinds(events)),
		)
	}
}

func deliveryError(err error) error {
	if errors.Is(err, domain.ErrNotificationDelivery) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrNotificationDelivery, err)
}
