// Package ui holds the client application's state machine. Every change
// goes through Reduce; side effects (API calls) live in Controller.
package ui

import (
	"strings"

	"employee-service/internal/employee"

	"github.com/shopspring/decimal"
)

type Dialog int

const (
	DialogNone Dialog = iota
	DialogForm
	DialogChart
	DialogReport
	DialogConfirmDelete
)

func (d Dialog) String() string {
	switch d {
	case DialogForm:
		return "form"
	case DialogChart:
		return "chart"
	case DialogReport:
		return "report"
	case DialogConfirmDelete:
		return "confirm-delete"
	default:
		return "none"
	}
}

type DeleteMode int

const (
	DeleteNone DeleteMode = iota
	DeleteSingle
	DeleteMulti
)

type ChartType string

const (
	ChartPie  ChartType = "pie"
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
)

// PageSizes are the row counts offered by the list.
var PageSizes = []int{5, 10, 20}

// State is a value; Reduce never mutates the State it receives.
type State struct {
	Employees []employee.Employee
	States    []string
	Search    string

	Dialog  Dialog
	Editing *employee.Employee

	Selected     []int64
	DeleteMode   DeleteMode
	DeleteTarget int64

	ChartType ChartType

	Page     int // zero-based
	PageSize int

	Err string
}

func InitialState() State {
	return State{ChartType: ChartPie, PageSize: PageSizes[0]}
}

// Visible filters the loaded employees by case-insensitive substring match
// on name.
func (s State) Visible() []employee.Employee {
	needle := strings.ToLower(s.Search)
	out := make([]employee.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

func (s State) PageCount() int {
	n := len(s.Visible())
	if n == 0 || s.PageSize <= 0 {
		return 1
	}
	return (n + s.PageSize - 1) / s.PageSize
}

// PageRows is the slice of Visible shown on the current page.
func (s State) PageRows() []employee.Employee {
	rows := s.Visible()
	if s.PageSize <= 0 {
		return rows
	}
	start := s.Page * s.PageSize
	if start >= len(rows) {
		return nil
	}
	end := min(start+s.PageSize, len(rows))
	return rows[start:end]
}

// TotalSalary sums salaries on the current page.
func (s State) TotalSalary() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.PageRows() {
		total = total.Add(e.Salary)
	}
	return total
}

func (s State) IsSelected(id int64) bool {
	for _, v := range s.Selected {
		if v == id {
			return true
		}
	}
	return false
}
