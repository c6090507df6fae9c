package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// EmployeeMetrics counts domain mutations and rendered reports.
type EmployeeMetrics struct {
	mutations metric.Int64Counter
	reports   metric.Int64Counter
}

func NewEmployeeMetrics(meter metric.Meter) (*EmployeeMetrics, error) {
	em := &EmployeeMetrics{}

	var err error

	em.mutations, err = meter.Int64Counter(
		"employees.mutations",
		metric.WithDescription("Employee records created or updated, and ids submitted for deletion"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	em.reports, err = meter.Int64Counter(
		"employees.reports.rendered",
		metric.WithDescription("Employee reports rendered"),
		metric.WithUnit("{report}"),
	)
	if err != nil {
		return nil, err
	}

	return em, nil
}

func (em *EmployeeMetrics) RecordCreated(ctx context.Context) { em.record(ctx, "created", 1) }
func (em *EmployeeMetrics) RecordUpdated(ctx context.Context) { em.record(ctx, "updated", 1) }

// RecordDeleteRequested counts ids submitted for deletion. Ids that matched
// no row are included.
func (em *EmployeeMetrics) RecordDeleteRequested(ctx context.Context, count int) {
	em.record(ctx, "delete_requested", int64(count))
}

func (em *EmployeeMetrics) record(ctx context.Context, action string, n int64) {
	if em == nil || em.mutations == nil || n <= 0 {
		return
	}
	em.mutations.Add(ctx, n, metric.WithAttributes(attribute.String("action", action)))
}

// RecordReport counts one rendered report of the given format ("pdf", "xlsx").
func (em *EmployeeMetrics) RecordReport(ctx context.Context, format string) {
	if em == nil || em.reports == nil {
		return
	}
	em.reports.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
}
