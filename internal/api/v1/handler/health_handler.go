package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger zerolog.Logger
}

func NewHealthHandler(db Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger.With().Str("handler", "HealthHandler").Logger()}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
}

// health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("Database ping failed")
		writeError(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
