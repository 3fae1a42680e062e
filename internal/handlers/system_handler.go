package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger is implemented by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SystemHandler serves health checks and the JSON fallbacks for unknown routes
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db Pinger, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: BaseHandler{Logger: logger},
		db:          db,
	}
}

// RegisterRoutes registers /health and the NotFound and MethodNotAllowed handlers
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
}

// Health handles GET /health
// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.Logger.Warn("health check failed", zap.Error(err))
		h.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers unmatched routes
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.RespondError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed answers routes that exist for other methods
func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.RespondError(w, http.StatusMethodNotAllowed, "method not allowed")
}
