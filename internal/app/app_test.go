package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"employee-service/internal/app"
	"employee-service/internal/config"
	"employee-service/internal/employee"
	"employee-service/internal/logger"
	"employee-service/internal/metrics"
	"employee-service/internal/swagger"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

// stubService answers every read with the same two employees.
type stubService struct {
	employee.Service
	searched *employee.Filter
}

func (s *stubService) list() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Asha", Designation: "Engineer", DateOfJoin: employee.NewDate(2020, time.January, 6), Salary: decimal.NewFromInt(100)},
		{ID: 2, Name: "Ravi", Designation: "Manager", DateOfJoin: employee.NewDate(2023, time.March, 1), Salary: decimal.NewFromInt(200)},
	}
}

func (s *stubService) GetAllEmployees(context.Context) ([]employee.Employee, error) {
	return s.list(), nil
}

func (s *stubService) Search(_ context.Context, f employee.Filter) ([]employee.Employee, error) {
	s.searched = &f
	return s.list(), nil
}

func (s *stubService) GetAllStates(context.Context) ([]employee.State, error) {
	return nil, errors.New("states table missing")
}

func newRouter(svc employee.Service, db pinger) chi.Router {
	return newRouterWith(svc, db, true)
}

func newRouterWith(svc employee.Service, db pinger, swaggerUI bool) chi.Router {
	return newRouterLogging(svc, db, swaggerUI, logger.Discard())
}

func newRouterLogging(svc employee.Service, db pinger, swaggerUI bool, log *slog.Logger) chi.Router {
	return app.NewRouter(app.Deps{
		Config: &config.Config{
			Server:  config.ServerConfig{CORSOrigins: []string{"http://localhost:3000"}, SwaggerUI: swaggerUI},
			Reports: config.ReportsConfig{Title: "Employee Report"},
		},
		Logger:    log,
		Metrics:   metrics.NewMock(),
		DB:        db,
		Employees: svc,
	})
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_HealthAtRoot(t *testing.T) {
	h := newRouter(&stubService{}, pinger{})

	assert.Equal(t, http.StatusOK, get(h, "/health").Code)
	assert.Equal(t, http.StatusOK, get(h, "/ready").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(newRouter(&stubService{}, pinger{err: errors.New("down")}), "/ready").Code)
}

func TestRouter_EmployeesUnderAPI(t *testing.T) {
	h := newRouter(&stubService{}, pinger{})

	w := get(h, "/api/Employee/GetAllEmployees")
	require.Equal(t, http.StatusOK, w.Code)

	var got []employee.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Ravi", got[0].Name)

	assert.Equal(t, http.StatusNotFound, get(h, "/Employee/GetAllEmployees").Code)
}

func TestRouter_ServiceErrorIs500(t *testing.T) {
	w := get(newRouter(&stubService{}, pinger{}), "/api/Employee/GetAllStates")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRouter_Reports(t *testing.T) {
	svc := &stubService{}
	w := get(newRouter(svc, pinger{}), "/api/Reports/GeneratePDFReport?searchValue=as")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.NotNil(t, svc.searched)
	assert.Equal(t, "as", svc.searched.SearchValue)
}

func TestRouter_CORS(t *testing.T) {
	h := newRouter(&stubService{}, pinger{})

	req := httptest.NewRequest(http.MethodGet, "/api/Employee/GetAllEmployees", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	// The embedded nil Service panics on any method the stub does not override.
	w := get(newRouter(&stubService{}, pinger{}), "/api/Employee/GetEmployee/1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_Swagger(t *testing.T) {
	w := get(newRouter(&stubService{}, pinger{}), swagger.DocPath)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"openapi"`)

	assert.Equal(t, http.StatusOK, get(newRouter(&stubService{}, pinger{}), "/swagger/").Code)
	assert.Equal(t, http.StatusNotFound, get(newRouterWith(&stubService{}, pinger{}, false), swagger.DocPath).Code)
}

func TestRouter_EveryRouteIsDocumented(t *testing.T) {
	raw, err := swagger.Document()
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	routes := 0
	err = chi.Walk(newRouter(&stubService{}, pinger{}), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger") {
			return nil
		}
		routes++
		ops, ok := doc.Paths[route]
		if assert.True(t, ok, "undocumented route %s", route) {
			assert.Contains(t, ops, strings.ToLower(method), "undocumented %s %s", method, route)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(doc.Paths), routes)
}

func TestRouter_HandlerLogsCarryCallerTrace(t *testing.T) {
	var buf bytes.Buffer
	h := newRouterLogging(&stubService{}, pinger{}, false, logger.NewWithWriter(&buf, "prod"))

	req := httptest.NewRequest(http.MethodGet, "/api/Employee/GetAllEmployees", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &entry))
	assert.Equal(t, "fetching all employees", entry["msg"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
}
