package handler

import (
	"net/http"

	"backoffice/internal/api/v1/dto"
	"backoffice/internal/model"
	"backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CategoryHandler serves the categories lookup list.
type CategoryHandler struct {
	categoryService service.CategoryService
	validate        *validator.Validate
	logger          zerolog.Logger
}

func NewCategoryHandler(categoryService service.CategoryService, validate *validator.Validate, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validate:        validate,
		logger:          logger.With().Str("handler", "CategoryHandler").Logger(),
	}
}

func (h *CategoryHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /api/categories", authMw(http.HandlerFunc(h.listCategories)))
}

// listCategories godoc
// @Summary List categories
// @Description Lists categories ordered by name, optionally filtered by type.
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "Category type"
// @Success 200 {object} dto.Envelope{data=[]model.Category}
// @Failure 400 {object} dto.Envelope "Invalid type"
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to list categories"
// @Router /api/categories [get]
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	q := dto.CategoryListQuery{Type: r.URL.Query().Get("type")}
	if err := h.validate.Struct(&q); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	categories, err := h.categoryService.ListCategories(r.Context(), q.Type)
	if err != nil {
		h.logger.Error().Err(err).Str("type", q.Type).Msg("Failed to list categories")
		writeError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	writeData(w, http.StatusOK, categories)
}
