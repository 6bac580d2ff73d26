//go:build unit

package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"order-followup/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx/fxtest"
)

func restoreGlobalTracerProvider(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestRegisterTracing(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled leaves the global provider alone", func(t *testing.T) {
		restoreGlobalTracerProvider(t)
		before := otel.GetTracerProvider()
		lc := fxtest.NewLifecycle(t)

		require.NoError(t, RegisterTracing(lc, config.NewTestConfig(), logger))

		assert.Same(t, before, otel.GetTracerProvider())
		lc.RequireStart().RequireStop()
	})

	t.Run("enabled without an endpoint stays off", func(t *testing.T) {
		restoreGlobalTracerProvider(t)
		before := otel.GetTracerProvider()
		cfg := config.NewTestConfig()
		cfg.Tracing.Enabled = true

		require.NoError(t, RegisterTracing(fxtest.NewLifecycle(t), cfg, logger))

		assert.Same(t, before, otel.GetTracerProvider())
	})

	t.Run("enabled installs an sdk provider and shuts it down on stop", func(t *testing.T) {
		restoreGlobalTracerProvider(t)
		cfg := config.NewTestConfig()
		cfg.Tracing.Enabled = true
		cfg.Tracing.Endpoint = "http://127.0.0.1:4318"
		lc := fxtest.NewLifecycle(t)

		require.NoError(t, RegisterTracing(lc, cfg, logger))

		assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
		lc.RequireStart().RequireStop()
	})
}

func TestNewTracerProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp, err := NewTracerProvider(context.Background(), config.TracingConfig{ServiceName: "order-followup-test"}, exporter)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "work")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "work", spans[0].Name)
	assert.Contains(t, spans[0].Resource.Attributes(), attribute.String("service.name", "order-followup-test"))
	require.NoError(t, tp.Shutdown(context.Background()))
}
