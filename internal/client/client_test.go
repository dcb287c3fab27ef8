package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardServer(t *testing.T, failPath string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	responses := map[string]string{
		"/api/dashboard/summary":       `{"success":true,"data":{"users":10,"articles":3}}`,
		"/api/dashboard/growth":        `{"success":true,"data":[{"name":"Sep","month":"2026-09","users":1},{"name":"Oct","month":"2026-10","users":2}]}`,
		"/api/dashboard/membership":    `{"success":true,"data":{"free":7,"premium":3,"total":10,"free_percentage":70,"premium_percentage":30}}`,
		"/api/dashboard/engagement":    `{"success":true,"data":{"topArticles":[],"topVideos":[],"totals":{"total_likes":3,"total_comments":2}}}`,
		"/api/dashboard/business":      `{"success":true,"data":{"total_businesses":4,"categories":[],"reviews":{"total_reviews":0,"avg_rating":"0"}}}`,
		"/api/dashboard/locations/top": `{"success":true,"data":[{"location":"London","count":3}]}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Authorization header missing"}`))
			return
		}
		if r.URL.Path == failPath {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"Failed to load"}`))
			return
		}
		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoad(t *testing.T) {
	var hits atomic.Int32
	srv := newDashboardServer(t, "", &hits)

	d, err := New(srv.URL+"/", "tok").Load(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.EqualValues(t, 6, hits.Load())
	assert.EqualValues(t, 10, d.Summary.Users)
	require.Len(t, d.Growth, 2)
	assert.Equal(t, "2026-10", d.Growth[1].Month)
	assert.Equal(t, 70, d.Membership.FreePercentage)
	assert.EqualValues(t, 3, d.Engagement.Totals.TotalLikes)
	assert.Equal(t, "0", d.Business.Reviews.AvgRating.String())
	assert.Equal(t, "London", d.Locations[0].Location)
}

func TestLoadFailsAsAWhole(t *testing.T) {
	var hits atomic.Int32
	srv := newDashboardServer(t, "/api/dashboard/business", &hits)

	d, err := New(srv.URL, "tok").Load(context.Background(), 0, 0)
	assert.Nil(t, d)
	require.Error(t, err)
	assert.EqualValues(t, 6, hits.Load(), "every request is still issued")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "business")
}

func TestUnauthorized(t *testing.T) {
	var hits atomic.Int32
	srv := newDashboardServer(t, "", &hits)

	_, err := New(srv.URL, "").Summary(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Authorization header missing", apiErr.Message)
}
