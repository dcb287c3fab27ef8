package handler

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// DocsHandler serves the registered Swagger document.
type DocsHandler struct {
	logger zerolog.Logger
}

func NewDocsHandler(logger zerolog.Logger) *DocsHandler {
	return &DocsHandler{logger: logger.With().Str("handler", "DocsHandler").Logger()}
}

func (h *DocsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /swagger/doc.json", h.doc)
}

func (h *DocsHandler) doc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to render swagger document")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
