package config_test

import (
	"testing"

	"employee-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("ENV", "unit")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "unit", cfg.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Server.SwaggerUI)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "employees.events", cfg.NATS.Subject)
	assert.Empty(t, cfg.NATS.URL)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "EmployeeReports.pdf", cfg.Reports.PDFFileName)
	assert.Equal(t, "EmployeeReport.xlsx", cfg.Reports.ExcelFileName)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENV", "unit")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NATS_URL", "nats://nats:4222")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
}

func TestLoad_LocalConfigFile(t *testing.T) {
	t.Setenv("ENV", "local")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPTraceEndpoint)
}
