// Package metrics records project lifecycle outcomes. Every observation goes
// to a Prometheus registry served at /metrics and, when telemetry is
// enabled, to the matching OpenTelemetry instrument as well.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/telemetry"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Recorder owns the Prometheus collectors. The zero value is not usable;
// a nil *Recorder discards every observation.
type Recorder struct {
	registry *prometheus.Registry
	otel     *telemetry.Metrics

	mutations     *prometheus.CounterVec
	retries       *prometheus.CounterVec
	notifications *prometheus.CounterVec
	requests      *prometheus.HistogramVec
}

// New creates a Recorder backed by a fresh registry that also exports Go
// runtime and process collectors. otelMetrics may be nil.
func New(otelMetrics *telemetry.Metrics) *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		otel:     otelMetrics,
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "project_mutations_total",
				Help: "Project lifecycle operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "project_conflict_retries_total",
				Help: "Version conflicts that caused an operation to be retried",
			},
			[]string{"operation"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_deliveries_total",
				Help: "Notification deliveries by kind and result",
			},
			[]string{"kind", "result"},
		),
		requests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_server_request_duration_seconds",
				Help:    "Inbound HTTP request latency by method, route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// Handler returns the scrape endpoint for this recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Mutation counts one finished lifecycle operation.
func (r *Recorder) Mutation(ctx context.Context, operation, result string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(operation, result).Inc()
	if r.otel != nil {
		r.otel.ProjectMutationTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrOperation.String(operation),
			telemetry.AttrResult.String(result),
		))
	}
}

// ConflictRetry counts one retry caused by a stale version.
func (r *Recorder) ConflictRetry(ctx context.Context, operation string) {
	if r == nil {
		return
	}
	r.retries.WithLabelValues(operation).Inc()
	if r.otel != nil {
		r.otel.ConflictRetryTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrOperation.String(operation),
		))
	}
}

// Notification counts one delivery attempt.
func (r *Recorder) Notification(ctx context.Context, kind, result string) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(kind, result).Inc()
	if r.otel != nil {
		r.otel.NotificationDispatchTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrKind.String(kind),
			telemetry.AttrResult.String(result),
		))
	}
}

// HTTPRequest observes one served request. route should be the router
// pattern, not the raw path.
func (r *Recorder) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
