package ui

import (
	"time"

	"employee-service/internal/report"
)

const exportTitle = "Employee List"

// ExportPDF renders the visible rows locally, without a server round-trip.
func ExportPDF(s State, now func() time.Time) ([]byte, error) {
	return report.NewRenderer(exportTitle, now).ListPDF(s.Visible())
}
