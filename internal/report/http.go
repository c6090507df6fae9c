package report

import (
	"context"
	"log/slog"
	"net/http"

	"employee-service/internal/config"
	"employee-service/internal/employee"
	"employee-service/internal/httputil"
	"employee-service/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// Searcher is the slice of employee.Service the reports need.
type Searcher interface {
	Search(ctx context.Context, filter employee.Filter) ([]employee.Employee, error)
}

type Handler struct {
	employees Searcher
	renderer  *Renderer
	cfg       config.ReportsConfig
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewHandler(employees Searcher, renderer *Renderer, cfg config.ReportsConfig, logger *slog.Logger, m *metrics.Metrics) *Handler {
	if cfg.PDFFileName == "" {
		cfg.PDFFileName = "EmployeeReports.pdf"
	}
	if cfg.ExcelFileName == "" {
		cfg.ExcelFileName = "EmployeeReport.xlsx"
	}
	return &Handler{
		employees: employees,
		renderer:  renderer,
		cfg:       cfg,
		logger:    logger,
		metrics:   m,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/Reports", func(r chi.Router) {
		r.Get("/GeneratePDFReport", h.GeneratePDF)
		r.Get("/GenerateExcelReport", h.GenerateExcel)
	})
}

func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.load(w, r)
	if !ok {
		return
	}

	data, err := h.renderer.PDF(rows)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render pdf report", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.Employees.RecordReport(r.Context(), "pdf")
	httputil.RespondWithFile(w, ContentTypePDF, h.cfg.PDFFileName, data)
}

func (h *Handler) GenerateExcel(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.load(w, r)
	if !ok {
		return
	}

	data, err := h.renderer.Excel(rows)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render excel report", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.Employees.RecordReport(r.Context(), "xlsx")
	httputil.RespondWithFile(w, ContentTypeXLSX, h.cfg.ExcelFileName, data)
}

// load fetches employees whose name contains SearchValue, newest hire first.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) ([]employee.Employee, bool) {
	search, _ := httputil.QueryValue(r, "SearchValue")

	h.logger.InfoContext(r.Context(), "generating employee report", "search", search)
	rows, err := h.employees.Search(r.Context(), employee.Filter{SearchValue: search, SearchColumn: "Name"})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load report rows", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}

	employee.SortByJoinDateDesc(rows)
	return rows, true
}
