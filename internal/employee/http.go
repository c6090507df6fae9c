package employee

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"employee-service/internal/httputil"
	"employee-service/internal/metrics"

	"github.com/go-chi/chi/v5"
)

const defaultPageSize = 5

type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// RegisterRoutes mounts the employee endpoints. The caller decides the
// prefix (the server uses /api).
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/Employee", func(r chi.Router) {
		r.Get("/SearchDataBySearchParameter", h.Search)
		r.Get("/GetAllEmployees", h.GetAllEmployees)
		r.Get("/GetEmployee/{id}", h.GetEmployee)
		r.Post("/AddEmployee", h.AddEmployee)
		r.Put("/UpdateEmployee/{id}", h.UpdateEmployee)
		r.Delete("/DeleteEmployee/{id}", h.DeleteEmployee)
		r.Delete("/DeleteMultiple", h.DeleteMultiple)
		r.Get("/GetAllStates", h.GetAllStates)
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "searching employees",
		"search_column", filter.SearchColumn, "sort_column", filter.SortColumn)

	employees, err := h.service.Search(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	SortByJoinDateDesc(employees)
	httputil.RespondWithJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching all employees")

	employees, err := h.service.GetAllEmployees(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	SortByJoinDateDesc(employees)
	httputil.RespondWithJSON(w, http.StatusOK, employees)
}

// GetEmployee answers 404 with an empty body when the id is unknown.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := h.service.GetEmployeeByID(r.Context(), id)
	if errors.Is(err, ErrEmployeeNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, employee)
}

func (h *Handler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var employee Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating employee", "name", employee.Name)
	created, err := h.service.CreateEmployee(r.Context(), &employee)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.metrics.Employees.RecordCreated(r.Context())

	w.Header().Set("Location", fmt.Sprintf("/api/Employee/GetEmployee/%d", created.ID))
	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var employee Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating employee", "id", id)
	if err := h.service.UpdateEmployee(r.Context(), id, &employee); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.metrics.Employees.RecordUpdated(r.Context())
	httputil.RespondWithMessage(w, http.StatusOK, "Updated Successfully")
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting employee", "id", id)
	if err := h.service.DeleteEmployee(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.metrics.Employees.RecordDeleteRequested(r.Context(), 1)
	httputil.RespondWithMessage(w, http.StatusOK, "Deleted Successfully")
}

func (h *Handler) DeleteMultiple(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting employees", "count", len(ids))
	if err := h.service.DeleteEmployees(r.Context(), ids); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.metrics.Employees.RecordDeleteRequested(r.Context(), len(ids))
	httputil.RespondWithMessage(w, http.StatusOK, "Deleted Successfully")
}

func (h *Handler) GetAllStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.GetAllStates(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, states)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, ErrDuplicateEmployee):
		h.logger.InfoContext(ctx, "duplicate employee rejected")
		httputil.RespondWithError(w, http.StatusBadRequest, "Duplicate record found.")
	case errors.Is(err, ErrIDMismatch):
		h.logger.InfoContext(ctx, "employee id mismatch")
		httputil.RespondWithError(w, http.StatusBadRequest, "Employee ID mismatch.")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidColumn):
		h.logger.InfoContext(ctx, "invalid input", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmployeeNotFound):
		h.logger.InfoContext(ctx, "employee not found")
		httputil.RespondWithError(w, http.StatusNotFound, "Employee not found")
	default:
		h.logger.ErrorContext(ctx, "internal error", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseFilter reads the search parameters. Paging applies when either page
// or pageSize is present; the missing one defaults to 1 or 5.
func parseFilter(r *http.Request) (Filter, error) {
	var filter Filter

	filter.SearchValue, _ = httputil.QueryValue(r, "searchValue")
	filter.SearchColumn, _ = httputil.QueryValue(r, "searchColumn")
	if filter.SearchColumn == "" {
		filter.SearchColumn = "Name"
	}
	filter.SortColumn, _ = httputil.QueryValue(r, "sortColumn")

	if v, ok := httputil.QueryValue(r, "ascending"); ok && v != "" {
		asc, err := strconv.ParseBool(v)
		if err != nil {
			return Filter{}, errors.New("ascending must be true or false")
		}
		filter.Descending = !asc
	}

	pageRaw, hasPage := httputil.QueryValue(r, "page")
	sizeRaw, hasSize := httputil.QueryValue(r, "pageSize")
	if hasPage || hasSize {
		paging := Paging{Page: 1, PageSize: defaultPageSize}
		if hasPage {
			n, err := strconv.Atoi(pageRaw)
			if err != nil {
				return Filter{}, errors.New("page must be an integer")
			}
			paging.Page = n
		}
		if hasSize {
			n, err := strconv.Atoi(sizeRaw)
			if err != nil {
				return Filter{}, errors.New("pageSize must be an integer")
			}
			paging.PageSize = n
		}
		filter.Paging = &paging
	}

	return filter, nil
}

// SortByJoinDateDesc orders employees newest hire first, keeping the
// existing order among equal dates.
func SortByJoinDateDesc(employees []Employee) {
	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].DateOfJoin.After(employees[j].DateOfJoin.Time)
	})
}
