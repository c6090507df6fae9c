package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
)

// Metrics groups the service's instruments. All Record* methods are safe on
// the zero value, which is what NewMock hands out.
type Metrics struct {
	Runtime   *RuntimeMetrics
	Database  *DatabaseMetrics
	Messaging *MessagingMetrics
	Health    *HealthMetrics
	Employees *EmployeeMetrics
	logger    *slog.Logger
}

func New(ctx context.Context, serviceName string, logger *slog.Logger) (*Metrics, error) {
	meter := otel.Meter(serviceName)

	runtime, err := NewRuntimeMetrics(ctx, meter)
	if err != nil {
		return nil, err
	}

	database, err := NewDatabaseMetrics(meter)
	if err != nil {
		return nil, err
	}

	messaging, err := NewMessagingMetrics(meter)
	if err != nil {
		return nil, err
	}

	health, err := NewHealthMetrics(meter)
	if err != nil {
		return nil, err
	}

	employees, err := NewEmployeeMetrics(meter)
	if err != nil {
		return nil, err
	}

	logger.Info("metrics collectors initialized successfully")

	return &Metrics{
		Runtime:   runtime,
		Database:  database,
		Messaging: messaging,
		Health:    health,
		Employees: employees,
		logger:    logger,
	}, nil
}

// NewMock creates a no-op Metrics instance for testing.
func NewMock() *Metrics {
	return &Metrics{
		Runtime:   &RuntimeMetrics{},
		Database:  &DatabaseMetrics{},
		Messaging: &MessagingMetrics{},
		Health:    &HealthMetrics{dependencies: map[string]*DependencyStatus{}},
		Employees: &EmployeeMetrics{},
	}
}

// latencyBuckets covers 1ms..10s, used by query and dependency histograms.
var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0}
