package report

import (
	"bytes"
	"fmt"
	"strconv"

	"employee-service/internal/employee"

	"github.com/go-pdf/fpdf"
)

// Column widths in mm for an A4 landscape page (277mm printable).
var pdfWidths = []float64{14, 50, 45, 30, 32, 24, 44, 32}

// pdfLayout selects the columns and footer of a rendered table.
type pdfLayout struct {
	skipID    bool
	withTotal bool
}

// PDF renders the server report: every column plus a total salary footer.
func (r *Renderer) PDF(employees []employee.Employee) ([]byte, error) {
	return r.renderPDF(employees, pdfLayout{withTotal: true})
}

// ListPDF renders a plain employee list without the Id column or footer.
func (r *Renderer) ListPDF(employees []employee.Employee) ([]byte, error) {
	return r.renderPDF(employees, pdfLayout{skipID: true})
}

func (r *Renderer) renderPDF(employees []employee.Employee, layout pdfLayout) ([]byte, error) {
	first := 0
	if layout.skipID {
		first = 1
	}
	widths := pdfWidths[first:]

	pdf := fpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; names arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(r.title, true)
	pdf.SetCreationDate(r.now())
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(r.title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Generated "+r.now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range Headers[first:] {
			pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, e := range employees {
		if pdf.GetY()+7 > pageHeight-bottom-15 {
			pdf.AddPage()
			writeHeader()
		}
		for i, cell := range Row(e)[first:] {
			align := "L"
			if col := i + first; col == 0 || col == 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if layout.withTotal {
		pdf.SetFont("Helvetica", "B", 10)
		labelWidth := 0.0
		for _, w := range pdfWidths[:4] {
			labelWidth += w
		}
		pdf.CellFormat(labelWidth, 8, tr("Total Salary"), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfWidths[4], 8, TotalSalary(employees).StringFixed(2), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Row formats e in Headers order.
func Row(e employee.Employee) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Name,
		e.Designation,
		e.DateOfJoin.String(),
		e.Salary.StringFixed(2),
		e.Gender,
		e.State,
		e.DateOfBirth.String(),
	}
}
