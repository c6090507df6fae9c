package report

import (
	"fmt"

	"employee-service/internal/employee"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Employees"

func (r *Renderer) Excel(employees []employee.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   r.title,
		Created: r.now().UTC().Format("2006-01-02T15:04:05Z"),
	}); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	dateFmt := "yyyy-mm-dd"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, err
	}
	// Built-in format 4 is "#,##0.00".
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}

	for i, e := range employees {
		row := i + 2
		values := []any{
			e.ID,
			e.Name,
			e.Designation,
			e.DateOfJoin.Time,
			e.Salary.InexactFloat64(),
			e.Gender,
			e.State,
			e.DateOfBirth.Time,
		}
		if err := f.SetSheetRow(SheetName, cell("A", row), &values); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, cell("D", row), cell("D", row), dateStyle); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, cell("H", row), cell("H", row), dateStyle); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, cell("E", row), cell("E", row), moneyStyle); err != nil {
			return nil, err
		}
	}

	last := len(employees) + 1
	if err := f.AutoFilter(SheetName, fmt.Sprintf("A1:H%d", last), nil); err != nil {
		return nil, err
	}

	totalRow := last + 1
	if err := f.SetCellValue(SheetName, cell("D", totalRow), "Total Salary"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, cell("E", totalRow), TotalSalary(employees).InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, cell("D", totalRow), cell("D", totalRow), headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, cell("E", totalRow), cell("E", totalRow), moneyStyle); err != nil {
		return nil, err
	}

	for col, width := range map[string]float64{"A": 8, "B": 24, "C": 22, "D": 14, "E": 14, "F": 10, "G": 20, "H": 14} {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
