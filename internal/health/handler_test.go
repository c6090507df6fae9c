package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-service/internal/health"
	"employee-service/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func serve(t *testing.T, p health.Pinger, m *metrics.Metrics, path string) (*httptest.ResponseRecorder, health.Response) {
	t.Helper()
	router := chi.NewRouter()
	health.NewHandler(p, m).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp health.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealth(t *testing.T) {
	w, resp := serve(t, fakePinger{}, metrics.NewMock(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp.Status)
}

func TestReady(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		m := metrics.NewMock()
		w, resp := serve(t, fakePinger{}, m, "/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ready", resp.Status)
		assert.True(t, m.Health.Available("postgres"))
	})

	t.Run("database down", func(t *testing.T) {
		m := metrics.NewMock()
		w, resp := serve(t, fakePinger{err: errors.New("connection refused")}, m, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unavailable", resp.Status)
		assert.False(t, m.Health.Available("postgres"))
	})
}
