// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "project-lifecycle-service", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization and pre-registered instruments:
//
//	mp, err := telemetry.InitMeter(ctx, "project-lifecycle-service", telemetry.ExporterOTLP, endpoint)
//	metrics, err := telemetry.NewMetrics(mp, "project-lifecycle-service")
//	metrics.ProjectMutationTotal.Add(ctx, 1, ...)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("project.operation")
	AttrKind        = attribute.Key("notification.kind")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	ProjectMutationTotal      metric.Int64Counter
	ConflictRetryTotal        metric.Int64Counter
	NotificationDispatchTotal metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: ExporterOTLP uses
// OTLP/HTTP with the given endpoint, ExporterStdout a pretty-printed stdout
// exporter for development. Any other value is an error.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider. Exporter
// selection follows InitTracer.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates all metric instruments on a meter scoped to the given
// instrumentation name.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	var (
		m    Metrics
		errs []error
	)

	histogram := func(name, desc, unit string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s")
	m.ServerRequestTotal = counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram("http.client.request.duration", "Duration of outgoing HTTP requests", "s")
	m.ClientRequestTotal = counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}")

	m.ProjectMutationTotal = counter("project.mutation.total",
		"Project lifecycle operations by outcome", "{operation}")
	m.ConflictRetryTotal = counter("project.conflict.retry.total",
		"Optimistic concurrency conflicts that caused a retry", "{retry}")
	m.NotificationDispatchTotal = counter("notification.dispatch.total",
		"Notification deliveries by kind and outcome", "{message}")

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &m, nil
}

func checkExporter(exporter, endpoint string) error {
	switch exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q (want %q or %q)", exporter, ExporterStdout, ExporterOTLP)
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	if exporter == ExporterOTLP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	if exporter == ExporterOTLP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	}
	return stdoutmetric.New()
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
