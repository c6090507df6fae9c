package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"employee-service/internal/config"
	"employee-service/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Telemetry struct {
	// MeterProvider and TracerProvider are nil when export is disabled.
	MeterProvider  *metric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
	Metrics        *metrics.Metrics
}

// Init wires metrics and tracing. With export disabled the instruments are
// still created against the global (no-op) providers so call sites never
// branch, and incoming W3C trace context is still propagated.
func Init(ctx context.Context, cfg config.TelemetryConfig, serviceName, serviceVersion, env string, logger *slog.Logger) (*Telemetry, error) {
	t := &Telemetry{}

	otel.SetTextMapPropagator(propagation.TraceContext{})

	if cfg.Enabled {
		res, err := resource.New(ctx,
			resource.WithAttributes(
				semconv.ServiceName(serviceName),
				semconv.ServiceVersion(serviceVersion),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create resource: %w", err)
		}

		mp, err := initMeterProvider(ctx, cfg.OTLPEndpoint, res, logger)
		if err != nil {
			return nil, err
		}
		t.MeterProvider = mp

		tp, err := initTracerProvider(ctx, cfg.OTLPTraceEndpoint, res, logger)
		if err != nil {
			return nil, err
		}
		t.TracerProvider = tp
	} else {
		logger.Info("OTel export disabled")
	}

	m, err := metrics.New(ctx, serviceName, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	t.Metrics = m

	meter := otel.Meter(serviceName)
	if err := m.Health.RegisterServiceInfo(ctx, meter, serviceName, serviceVersion, env); err != nil {
		logger.Warn("failed to register service info", "error", err)
	}

	return t, nil
}

func initMeterProvider(ctx context.Context, endpoint string, res *resource.Resource, logger *slog.Logger) (*metric.MeterProvider, error) {
	logger.Info("initializing OTel metrics", "endpoint", endpoint)

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(10*time.Second))),
	)
	otel.SetMeterProvider(mp)

	return mp, nil
}

func initTracerProvider(ctx context.Context, endpoint string, res *resource.Resource, logger *slog.Logger) (*sdktrace.TracerProvider, error) {
	logger.Info("initializing OTel tracing", "endpoint", endpoint)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)

	return tp, nil
}

func (t *Telemetry) Shutdown(ctx context.Context, logger *slog.Logger) error {
	if t == nil {
		return nil
	}
	var errs []error
	if t.TracerProvider != nil {
		logger.Info("shutting down OTel tracer provider")
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown tracer provider: %w", err))
		}
	}
	if t.MeterProvider != nil {
		logger.Info("shutting down OTel meter provider")
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}
