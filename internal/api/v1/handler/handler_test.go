package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/middleware"
	"backoffice/internal/model"
	"backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardService struct {
	err           error
	growthMonths  int
	locationLimit int
	usage         []model.CategoryUsage
}

func (f *fakeDashboardService) Summary(ctx context.Context) (*model.Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Summary{Users: 10, Articles: 4}, nil
}

func (f *fakeDashboardService) Growth(ctx context.Context, months int) ([]model.GrowthBucket, error) {
	f.growthMonths = months
	if f.err != nil {
		return nil, f.err
	}
	if months < 1 {
		return nil, service.ErrInvalidMonths
	}
	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	buckets := make([]model.GrowthBucket, months)
	for i := range buckets {
		buckets[i] = model.GrowthBucket{MonthStart: start.AddDate(0, i-months+1, 0)}
	}
	return buckets, nil
}

func (f *fakeDashboardService) Membership(ctx context.Context) (*model.Membership, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Membership{Free: 7, Premium: 3, Total: 10, FreePercentage: 70, PremiumPercentage: 30}, nil
}

func (f *fakeDashboardService) Engagement(ctx context.Context) (*model.Engagement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Engagement{}, nil
}

func (f *fakeDashboardService) Business(ctx context.Context) (*model.BusinessStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.BusinessStats{
		TotalBusinesses: 2,
		Reviews:         model.ReviewStats{TotalReviews: 4, AvgRating: decimal.RequireFromString("4.25")},
	}, nil
}

func (f *fakeDashboardService) TopLocations(ctx context.Context, limit int) ([]model.LocationCount, error) {
	f.locationLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func (f *fakeDashboardService) CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.usage, nil
}

func (f *fakeDashboardService) Build(ctx context.Context) (*model.Dashboard, error) {
	return nil, errors.New("not used")
}

func (f *fakeDashboardService) GrowthDefaultMonths() int { return 7 }

func newDashboardMux(svc service.DashboardService) *http.ServeMux {
	mux := http.NewServeMux()
	NewDashboardHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop()).
		RegisterRoutes(mux, middleware.Passthrough)
	return mux
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr, env
}

func TestDashboardHandler_Growth(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		status     int
		wantMonths int
	}{
		{"default when missing", "/api/dashboard/growth", http.StatusOK, 7},
		{"default when zero", "/api/dashboard/growth?months=0", http.StatusOK, 7},
		{"default when non-numeric", "/api/dashboard/growth?months=abc", http.StatusOK, 7},
		{"explicit", "/api/dashboard/growth?months=13", http.StatusOK, 13},
		{"negative rejected", "/api/dashboard/growth?months=-2", http.StatusBadRequest, 0},
		{"above int4 range rejected", "/api/dashboard/growth?months=2147483648", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDashboardService{}
			rr, env := do(t, newDashboardMux(svc), http.MethodGet, tt.target)

			assert.Equal(t, tt.status, rr.Code)
			if tt.status != http.StatusOK {
				assert.False(t, env.Success)
				assert.NotEmpty(t, env.Error)
				assert.Zero(t, svc.growthMonths, "service must not be called")
				return
			}
			var buckets []map[string]any
			require.NoError(t, json.Unmarshal(env.Data, &buckets))
			assert.Len(t, buckets, tt.wantMonths)
			assert.Equal(t, "Oct", buckets[len(buckets)-1]["name"])
			assert.Equal(t, "2026-10", buckets[len(buckets)-1]["month"])
		})
	}
}

func TestDashboardHandler_TopLocationsPassesLimit(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{"/api/dashboard/locations/top", 0},
		{"/api/dashboard/locations/top?limit=3", 3},
		{"/api/dashboard/locations/top?limit=-4", 0},
		{"/api/dashboard/locations/top?limit=x", 0},
	}
	for _, tt := range tests {
		svc := &fakeDashboardService{}
		rr, env := do(t, newDashboardMux(svc), http.MethodGet, tt.target)
		assert.Equal(t, http.StatusOK, rr.Code, tt.target)
		assert.Equal(t, tt.want, svc.locationLimit, tt.target)
		assert.JSONEq(t, `[]`, string(env.Data))
	}
}

func TestDashboardHandler_Shapes(t *testing.T) {
	mux := newDashboardMux(&fakeDashboardService{})

	t.Run("membership", func(t *testing.T) {
		_, env := do(t, mux, http.MethodGet, "/api/dashboard/membership")
		var m map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &m))
		assert.EqualValues(t, 70, m["free_percentage"])
		assert.EqualValues(t, 30, m["premium_percentage"])
		assert.Equal(t, []any{}, m["subscribers_by_plan"])
	})

	t.Run("engagement uses empty arrays", func(t *testing.T) {
		_, env := do(t, mux, http.MethodGet, "/api/dashboard/engagement")
		assert.JSONEq(t, `{"topArticles":[],"topVideos":[],"totals":{"total_likes":0,"total_comments":0}}`, string(env.Data))
	})

	t.Run("business avg rating is a decimal string", func(t *testing.T) {
		_, env := do(t, mux, http.MethodGet, "/api/dashboard/business")
		assert.JSONEq(t, `{"total_businesses":2,"categories":[],"reviews":{"total_reviews":4,"avg_rating":"4.25"}}`, string(env.Data))
	})
}

func TestDashboardHandler_CategoryUsage(t *testing.T) {
	svc := &fakeDashboardService{usage: []model.CategoryUsage{{Name: "Tech", Count: 2, Source: model.SourceArticles}}}
	rr := httptest.NewRecorder()
	newDashboardMux(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/categories/usage", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"usedCategories":[{"name":"Tech","count":2,"source":"articles"}]}`, rr.Body.String())
}

func TestDashboardHandler_ServerErrorHidesCause(t *testing.T) {
	mux := newDashboardMux(&fakeDashboardService{err: errors.New("pq: relation does not exist")})
	for _, target := range []string{
		"/api/dashboard/summary",
		"/api/dashboard/growth",
		"/api/dashboard/membership",
		"/api/dashboard/engagement",
		"/api/dashboard/business",
		"/api/dashboard/locations/top",
		"/api/dashboard/categories/usage",
	} {
		rr, env := do(t, mux, http.MethodGet, target)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, target)
		assert.False(t, env.Success, target)
		assert.NotContains(t, env.Error, "relation", target)
	}
}

func TestDashboardHandler_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	newDashboardMux(&fakeDashboardService{}).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/dashboard/summary", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
