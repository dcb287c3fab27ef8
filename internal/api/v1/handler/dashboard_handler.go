package handler

import (
	"errors"
	"net/http"

	"backoffice/internal/api/v1/dto"
	"backoffice/internal/model"
	"backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DashboardHandler serves the back-office dashboard aggregations.
type DashboardHandler struct {
	dashboardService service.DashboardService
	validate         *validator.Validate
	logger           zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, validate *validator.Validate, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		validate:         validate,
		logger:           logger.With().Str("handler", "DashboardHandler").Logger(),
	}
}

// RegisterRoutes mounts dashboard routes.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("GET /api/dashboard/summary", authMw(http.HandlerFunc(h.getSummary)))
	mux.Handle("GET /api/dashboard/growth", authMw(http.HandlerFunc(h.getGrowth)))
	mux.Handle("GET /api/dashboard/membership", authMw(http.HandlerFunc(h.getMembership)))
	mux.Handle("GET /api/dashboard/engagement", authMw(http.HandlerFunc(h.getEngagement)))
	mux.Handle("GET /api/dashboard/business", authMw(http.HandlerFunc(h.getBusiness)))
	mux.Handle("GET /api/dashboard/locations/top", authMw(http.HandlerFunc(h.getTopLocations)))
	mux.Handle("GET /api/dashboard/categories/usage", authMw(http.HandlerFunc(h.getCategoryUsage)))
}

// serverError logs the underlying failure and answers with a generic message.
func (h *DashboardHandler) serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	writeError(w, http.StatusInternalServerError, msg)
}

// getSummary godoc
// @Summary Get entity counts
// @Description Returns one live-row count per tracked entity type.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Envelope{data=model.Summary}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load summary"
// @Router /api/dashboard/summary [get]
func (h *DashboardHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		h.serverError(w, r, err, "Failed to load summary")
		return
	}
	writeData(w, http.StatusOK, summary)
}

// getGrowth godoc
// @Summary Get monthly growth
// @Description Returns one bucket per calendar month for the trailing window, oldest first.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param months query int false "Number of months (default 7)"
// @Success 200 {object} dto.Envelope{data=[]dto.GrowthBucketDTO}
// @Failure 400 {object} dto.Envelope "Invalid months"
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load growth"
// @Router /api/dashboard/growth [get]
func (h *DashboardHandler) getGrowth(w http.ResponseWriter, r *http.Request) {
	months, ok := queryInt(r, "months")
	if !ok || months == 0 {
		months = h.dashboardService.GrowthDefaultMonths()
	}
	q := dto.GrowthQuery{Months: months}
	if err := h.validate.Struct(&q); err != nil {
		writeError(w, http.StatusBadRequest, "months must be between 1 and 2147483647")
		return
	}

	buckets, err := h.dashboardService.Growth(r.Context(), q.Months)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonths) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(w, r, err, "Failed to load growth")
		return
	}
	writeData(w, http.StatusOK, dto.NewGrowthDTO(buckets))
}

// getMembership godoc
// @Summary Get membership distribution
// @Description Returns free/premium counts and percentages, subscribers per plan, and placeholder tier metrics.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.MembershipDTO}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load membership"
// @Router /api/dashboard/membership [get]
func (h *DashboardHandler) getMembership(w http.ResponseWriter, r *http.Request) {
	membership, err := h.dashboardService.Membership(r.Context())
	if err != nil {
		h.serverError(w, r, err, "Failed to load membership")
		return
	}
	writeData(w, http.StatusOK, dto.NewMembershipDTO(membership))
}

// getEngagement godoc
// @Summary Get content engagement
// @Description Returns the top articles and videos by views and platform-wide like and comment totals.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.EngagementDTO}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load engagement"
// @Router /api/dashboard/engagement [get]
func (h *DashboardHandler) getEngagement(w http.ResponseWriter, r *http.Request) {
	engagement, err := h.dashboardService.Engagement(r.Context())
	if err != nil {
		h.serverError(w, r, err, "Failed to load engagement")
		return
	}
	writeData(w, http.StatusOK, dto.NewEngagementDTO(engagement))
}

// getBusiness godoc
// @Summary Get business directory stats
// @Description Returns the business count, the top categories, and review statistics.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.BusinessDTO}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load business stats"
// @Router /api/dashboard/business [get]
func (h *DashboardHandler) getBusiness(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Business(r.Context())
	if err != nil {
		h.serverError(w, r, err, "Failed to load business stats")
		return
	}
	writeData(w, http.StatusOK, dto.NewBusinessDTO(stats))
}

// getTopLocations godoc
// @Summary Get top user locations
// @Description Returns the most common user locations. NULL locations are reported as "Unknown".
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum rows (default 5, max 20)"
// @Success 200 {object} dto.Envelope{data=[]model.LocationCount}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load locations"
// @Router /api/dashboard/locations/top [get]
func (h *DashboardHandler) getTopLocations(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit")
	if !ok || limit < 0 {
		limit = 0
	}
	q := dto.LocationsQuery{Limit: limit}
	if err := h.validate.Struct(&q); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	locations, err := h.dashboardService.TopLocations(r.Context(), q.Limit)
	if err != nil {
		h.serverError(w, r, err, "Failed to load locations")
		return
	}
	if locations == nil {
		locations = []model.LocationCount{}
	}
	writeData(w, http.StatusOK, locations)
}

// getCategoryUsage godoc
// @Summary Get category usage
// @Description Returns per-source content counts for every category name present in the categories table.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CategoryUsageResponse
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope "Failed to load category usage"
// @Router /api/dashboard/categories/usage [get]
func (h *DashboardHandler) getCategoryUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.dashboardService.CategoryUsage(r.Context())
	if err != nil {
		h.serverError(w, r, err, "Failed to load category usage")
		return
	}
	if usage == nil {
		usage = []model.CategoryUsage{}
	}
	writeJSON(w, http.StatusOK, dto.CategoryUsageResponse{Success: true, UsedCategories: usage})
}
