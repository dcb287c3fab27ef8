package handler

import (
	"errors"
	"net/http"

	"backoffice/internal/api/v1/dto"
	"backoffice/internal/middleware"
	"backoffice/internal/model"
	"backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// SnapshotHandler requests and serves exported dashboard snapshots.
type SnapshotHandler struct {
	snapshotService service.SnapshotService
	validate        *validator.Validate
	logger          zerolog.Logger
}

func NewSnapshotHandler(snapshotService service.SnapshotService, validate *validator.Validate, logger zerolog.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		validate:        validate,
		logger:          logger.With().Str("handler", "SnapshotHandler").Logger(),
	}
}

func (h *SnapshotHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /api/dashboard/snapshots", authMw(http.HandlerFunc(h.createSnapshot)))
	mux.Handle("GET /api/dashboard/snapshots/{id}", authMw(http.HandlerFunc(h.getSnapshot)))
}

func newSnapshotResponse(s *model.Snapshot, downloadURL string) dto.SnapshotResponseDTO {
	return dto.SnapshotResponseDTO{
		ID:          s.ID,
		Status:      s.Status,
		RequestedBy: s.RequestedBy,
		Error:       s.Error,
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
		DownloadURL: downloadURL,
	}
}

// createSnapshot godoc
// @Summary Request a dashboard snapshot
// @Description Queues a background export of the full dashboard to object storage.
// @Tags snapshots
// @Security BearerAuth
// @Produce json
// @Success 202 {object} dto.Envelope{data=dto.SnapshotResponseDTO}
// @Failure 401 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope "Snapshot export is not configured"
// @Failure 500 {object} dto.Envelope "Failed to queue snapshot"
// @Router /api/dashboard/snapshots [post]
func (h *SnapshotHandler) createSnapshot(w http.ResponseWriter, r *http.Request) {
	requestedBy, _ := r.Context().Value(middleware.UserContextKey).(string)
	if requestedBy == "" {
		requestedBy = "anonymous"
	}

	snap, err := h.snapshotService.Request(r.Context(), requestedBy)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotsDisabled) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("requested_by", requestedBy).Msg("Failed to queue snapshot")
		writeError(w, http.StatusInternalServerError, "Failed to queue snapshot")
		return
	}
	w.Header().Set("Location", "/api/dashboard/snapshots/"+snap.ID)
	writeData(w, http.StatusAccepted, newSnapshotResponse(snap, ""))
}

// getSnapshot godoc
// @Summary Get a dashboard snapshot
// @Description Returns the snapshot status and, once completed, a time-limited download URL.
// @Tags snapshots
// @Security BearerAuth
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} dto.Envelope{data=dto.SnapshotResponseDTO}
// @Failure 400 {object} dto.Envelope "Invalid snapshot ID"
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Snapshot not found"
// @Failure 500 {object} dto.Envelope "Failed to load snapshot"
// @Router /api/dashboard/snapshots/{id} [get]
func (h *SnapshotHandler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	param := dto.SnapshotIDParam{ID: r.PathValue("id")}
	if err := h.validate.Struct(&param); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid snapshot ID")
		return
	}

	snap, url, err := h.snapshotService.Get(r.Context(), param.ID)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, "Snapshot not found")
			return
		}
		h.logger.Error().Err(err).Str("snapshot_id", param.ID).Msg("Failed to load snapshot")
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}
	writeData(w, http.StatusOK, newSnapshotResponse(snap, url))
}
