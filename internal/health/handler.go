package health

import (
	"context"
	"net/http"
	"time"

	"employee-service/internal/httputil"
	"employee-service/internal/metrics"

	"github.com/go-chi/chi/v5"
)

// Pinger is satisfied by *bun.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db      Pinger
	metrics *metrics.Metrics
}

func NewHandler(db Pinger, m *metrics.Metrics) *Handler {
	return &Handler{db: db, metrics: m}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, Response{Status: "ok"})
}

// Ready reports 503 until the database answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.PingContext(ctx)
	h.metrics.Health.RecordDependencyCheck(r.Context(), "postgres", time.Since(start), err)

	if err != nil {
		httputil.RespondWithJSON(w, http.StatusServiceUnavailable, Response{Status: "unavailable", Error: "database unreachable"})
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, Response{Status: "ready"})
}
