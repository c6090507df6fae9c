package ui

import (
	"fmt"

	"employee-service/internal/employee"

	termui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// SalarySlice is one designation's total salary.
type SalarySlice struct {
	Designation string
	Total       float64
}

// SalaryByDesignation sums salary per designation in order of first
// appearance.
func SalaryByDesignation(employees []employee.Employee) []SalarySlice {
	index := make(map[string]int)
	var out []SalarySlice
	for _, e := range employees {
		v, _ := e.Salary.Float64()
		i, ok := index[e.Designation]
		if !ok {
			index[e.Designation] = len(out)
			out = append(out, SalarySlice{Designation: e.Designation})
			i = len(out) - 1
		}
		out[i].Total += v
	}
	return out
}

const chartTitle = "Salary by Designation"

// NewChart builds the widget for the chart type. Without data it returns a
// paragraph saying so, since the chart widgets cannot draw an empty series.
func NewChart(t ChartType, data []SalarySlice) termui.Drawable {
	if len(data) == 0 {
		p := widgets.NewParagraph()
		p.Title = chartTitle
		p.Text = "No employees to chart."
		return p
	}

	labels := make([]string, len(data))
	values := make([]float64, len(data))
	for i, d := range data {
		labels[i] = d.Designation
		values[i] = d.Total
	}

	switch t {
	case ChartBar:
		bc := widgets.NewBarChart()
		bc.Title = chartTitle
		bc.Data = values
		bc.Labels = labels
		bc.BarWidth = 9
		bc.BarGap = 2
		bc.NumFormatter = func(v float64) string { return fmt.Sprintf("%.0f", v) }
		return bc
	case ChartLine:
		lc := widgets.NewPlot()
		lc.Title = chartTitle
		lc.Marker = widgets.MarkerBraille
		lc.DataLabels = labels
		lc.Data = [][]float64{values}
		if len(values) == 1 {
			lc.PlotType = widgets.ScatterPlot
		}
		lc.AxesColor = termui.ColorWhite
		lc.LineColors = []termui.Color{termui.ColorGreen}
		return lc
	default:
		pc := widgets.NewPieChart()
		pc.Title = chartTitle
		pc.Data = values
		pc.LabelFormatter = func(i int, v float64) string {
			return fmt.Sprintf("%s %.0f", labels[i], v)
		}
		return pc
	}
}
