// Package report renders employee lists as downloadable PDF and XLSX
// documents using one fixed layout.
package report

import (
	"time"

	"employee-service/internal/employee"

	"github.com/shopspring/decimal"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Headers are the column titles shared by every rendering of a list.
var Headers = []string{"Id", "Name", "Designation", "Date of Join", "Salary", "Gender", "State", "Date of Birth"}

type Renderer struct {
	title string
	now   func() time.Time
}

func NewRenderer(title string, now func() time.Time) *Renderer {
	if title == "" {
		title = "Employee Report"
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{title: title, now: now}
}

// TotalSalary sums the salary of every listed employee.
func TotalSalary(employees []employee.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.Salary)
	}
	return total
}
