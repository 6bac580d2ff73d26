package bootstrap

import (
	"context"
	"log/slog"

	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(RegisterTracing),
)

// RegisterTracing installs the global tracer provider when OTEL_ENABLED is set and an
// endpoint is configured. The provider is flushed on shutdown.
func RegisterTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	if !cfg.Tracing.Active() {
		logger.Debug("tracing disabled")
		return nil
	}

	ctx := context.Background()
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Tracing.Endpoint))
	if err != nil {
		return errs.Wrap(err, "create otlp trace exporter")
	}
	tp, err := NewTracerProvider(ctx, cfg.Tracing, exporter)
	if err != nil {
		return err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
	return nil
}

func NewTracerProvider(ctx context.Context, cfg config.TracingConfig, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "build trace resource")
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	), nil
}
