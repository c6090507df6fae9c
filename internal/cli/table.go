package cli

import (
	"io"

	"employee-service/internal/employee"
	"employee-service/internal/report"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

func printEmployees(w io.Writer, employees []employee.Employee, total *decimal.Decimal) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(report.Headers)
	table.SetAutoFormatHeaders(false)
	for _, e := range employees {
		table.Append(report.Row(e))
	}
	if total != nil {
		footer := make([]string, len(report.Headers))
		footer[3] = "Total Salary"
		footer[4] = total.StringFixed(2)
		table.SetFooter(footer)
	}
	table.Render()
}

func printStates(w io.Writer, states []employee.State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "State"})
	table.SetAutoFormatHeaders(false)
	for _, s := range states {
		table.Append([]string{s.StateCode, s.StateName})
	}
	table.Render()
}
