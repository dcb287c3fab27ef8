// Package client is a typed HTTP client for the dashboard API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/api/v1/dto"

	"golang.org/x/sync/errgroup"
)

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (%d)", e.StatusCode)
}

// DashboardClient calls the dashboard endpoints.
type DashboardClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a DashboardClient. token may be empty when the server runs
// without dashboard auth.
func New(baseURL, token string) *DashboardClient {
	return &DashboardClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *DashboardClient) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	target := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", target, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response from %s: %w", path, err)
		}
	}
	return nil
}

// getData unwraps the {success, data} envelope into out.
func (c *DashboardClient) getData(ctx context.Context, path string, out any) error {
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return &APIError{StatusCode: http.StatusOK, Message: env.Error}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to parse data from %s: %w", path, err)
	}
	return nil
}

func (c *DashboardClient) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	var out dto.SummaryDTO
	if err := c.getData(ctx, "/api/dashboard/summary", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Growth fetches months buckets; months <= 0 lets the server pick its default.
func (c *DashboardClient) Growth(ctx context.Context, months int) ([]dto.GrowthBucketDTO, error) {
	path := "/api/dashboard/growth"
	if months > 0 {
		path += "?" + url.Values{"months": {strconv.Itoa(months)}}.Encode()
	}
	var out []dto.GrowthBucketDTO
	if err := c.getData(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DashboardClient) Membership(ctx context.Context) (*dto.MembershipDTO, error) {
	var out dto.MembershipDTO
	if err := c.getData(ctx, "/api/dashboard/membership", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *DashboardClient) Engagement(ctx context.Context) (*dto.EngagementDTO, error) {
	var out dto.EngagementDTO
	if err := c.getData(ctx, "/api/dashboard/engagement", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *DashboardClient) Business(ctx context.Context) (*dto.BusinessDTO, error) {
	var out dto.BusinessDTO
	if err := c.getData(ctx, "/api/dashboard/business", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopLocations fetches up to limit locations; limit <= 0 uses the server default.
func (c *DashboardClient) TopLocations(ctx context.Context, limit int) ([]dto.LocationDTO, error) {
	path := "/api/dashboard/locations/top"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var out []dto.LocationDTO
	if err := c.getData(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DashboardClient) CategoryUsage(ctx context.Context) ([]dto.CategoryUsageDTO, error) {
	var resp dto.CategoryUsageResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/categories/usage", nil, &resp); err != nil {
		return nil, err
	}
	return resp.UsedCategories, nil
}

func (c *DashboardClient) RequestSnapshot(ctx context.Context) (*dto.SnapshotResponseDTO, error) {
	var env struct {
		Data dto.SnapshotResponseDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/dashboard/snapshots", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *DashboardClient) Snapshot(ctx context.Context, id string) (*dto.SnapshotResponseDTO, error) {
	var out dto.SnapshotResponseDTO
	if err := c.getData(ctx, "/api/dashboard/snapshots/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard is everything the dashboard view renders.
type Dashboard struct {
	Summary    *dto.SummaryDTO
	Growth     []dto.GrowthBucketDTO
	Membership *dto.MembershipDTO
	Engagement *dto.EngagementDTO
	Business   *dto.BusinessDTO
	Locations  []dto.LocationDTO
}

// Load issues the six dashboard requests concurrently and waits for all of
// them. If any request fails, Load returns the joined errors and no dashboard.
func (c *DashboardClient) Load(ctx context.Context, months, locationLimit int) (*Dashboard, error) {
	var (
		d    Dashboard
		g    errgroup.Group
		errs = make([]error, 6)
	)
	part := func(i int, name string, fn func() error) {
		g.Go(func() error {
			if err := fn(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
			}
			return errs[i]
		})
	}

	part(0, "summary", func() (err error) {
		d.Summary, err = c.Summary(ctx)
		return err
	})
	part(1, "growth", func() (err error) {
		d.Growth, err = c.Growth(ctx, months)
		return err
	})
	part(2, "membership", func() (err error) {
		d.Membership, err = c.Membership(ctx)
		return err
	})
	part(3, "engagement", func() (err error) {
		d.Engagement, err = c.Engagement(ctx)
		return err
	})
	part(4, "business", func() (err error) {
		d.Business, err = c.Business(ctx)
		return err
	})
	part(5, "locations", func() (err error) {
		d.Locations, err = c.TopLocations(ctx, locationLimit)
		return err
	})

	if g.Wait() != nil {
		return nil, fmt.Errorf("loading dashboard: %w", errors.Join(errs...))
	}
	return &d, nil
}
