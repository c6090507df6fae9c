package telemetry_test

import (
	"context"
	"testing"

	"employee-service/internal/config"
	"employee-service/internal/logger"
	"employee-service/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInit_DisabledStillProvidesMetrics(t *testing.T) {
	log := logger.Discard()

	tel, err := telemetry.Init(context.Background(), config.TelemetryConfig{Enabled: false}, "employee-service", "test", "local", log)
	require.NoError(t, err)

	assert.Nil(t, tel.MeterProvider)
	assert.Nil(t, tel.TracerProvider)
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	require.NotNil(t, tel.Metrics)
	assert.NoError(t, tel.Shutdown(context.Background(), log))
}
