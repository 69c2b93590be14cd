// Package tracing installs the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Init sets the global tracer provider and returns its shutdown func. With
// tracing disabled the global no-op provider is left in place.
func Init(cfg config.TracingConfig, service config.ServiceConfig, logger *slog.Logger) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	tp := NewProvider(cfg, service, NewLogExporter(logger))
	otel.SetTracerProvider(tp)

	logger.Info("Tracing enabled", attr.String("sample_rate", strconv.FormatFloat(cfg.SampleRate, 'f', -1, 64)))
	return tp.Shutdown, nil
}

// NewProvider builds a provider that batches spans into exp.
func NewProvider(cfg config.TracingConfig, service config.ServiceConfig, exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", service.Name),
		attribute.String("service.version", service.Version),
	)
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))),
	)
}

// LogExporter writes finished spans to a slog logger at debug level.
type LogExporter struct {
	logger *slog.Logger
}

func NewLogExporter(logger *slog.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []any{
			attr.String("span", s.Name()),
			attr.String("trace_id", s.SpanContext().TraceID().String()),
			attr.Duration("duration", s.EndTime().Sub(s.StartTime())),
			attr.String("status", s.Status().Code.String()),
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, attr.String(string(kv.Key), kv.Value.Emit()))
		}
		e.logger.DebugContext(ctx, "Span finished", attrs...)
	}
	return nil
}

func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}
