package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"backoffice/internal/model"
	"backoffice/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	topContentLimit      = 5
	topCategoryLimit     = 8
	defaultGrowthMonths  = 7
	defaultLocationLimit = 5
	maxLocationLimit     = 20
)

var ErrInvalidMonths = errors.New("months must be between 1 and 2147483647")

// DashboardOptions carries the tunable defaults of the dashboard aggregations.
type DashboardOptions struct {
	GrowthDefaultMonths   int
	LocationsDefaultLimit int
	LocationsMaxLimit     int
	CategoryMatchMode     string
	Placeholders          model.PlaceholderMetrics
}

// DashboardService aggregates read-only metrics over the platform's entity tables.
type DashboardService interface {
	Summary(ctx context.Context) (*model.Summary, error)
	// Growth returns months buckets. months outside 1..MaxInt32 is rejected with ErrInvalidMonths.
	Growth(ctx context.Context, months int) ([]model.GrowthBucket, error)
	Membership(ctx context.Context) (*model.Membership, error)
	Engagement(ctx context.Context) (*model.Engagement, error)
	Business(ctx context.Context) (*model.BusinessStats, error)
	// TopLocations clamps limit to the configured default and maximum.
	TopLocations(ctx context.Context, limit int) ([]model.LocationCount, error)
	CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error)
	// Build runs the six dashboard aggregations concurrently. Any failure fails the whole build.
	Build(ctx context.Context) (*model.Dashboard, error)
	GrowthDefaultMonths() int
}

type dashboardService struct {
	repo         repository.DashboardRepository
	categoryRepo repository.CategoryRepository
	opts         DashboardOptions
	logger       zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	repo repository.DashboardRepository,
	categoryRepo repository.CategoryRepository,
	opts DashboardOptions,
	logger zerolog.Logger,
) DashboardService {
	if opts.GrowthDefaultMonths <= 0 {
		opts.GrowthDefaultMonths = defaultGrowthMonths
	}
	if opts.LocationsMaxLimit <= 0 {
		opts.LocationsMaxLimit = maxLocationLimit
	}
	if opts.LocationsDefaultLimit <= 0 || opts.LocationsDefaultLimit > opts.LocationsMaxLimit {
		opts.LocationsDefaultLimit = min(defaultLocationLimit, opts.LocationsMaxLimit)
	}
	if opts.CategoryMatchMode == "" {
		opts.CategoryMatchMode = MatchExact
	}
	return &dashboardService{
		repo:         repo,
		categoryRepo: categoryRepo,
		opts:         opts,
		logger:       logger.With().Str("service", "DashboardService").Logger(),
	}
}

func (s *dashboardService) GrowthDefaultMonths() int {
	return s.opts.GrowthDefaultMonths
}

func (s *dashboardService) Summary(ctx context.Context) (*model.Summary, error) {
	return s.repo.GetSummary(ctx)
}

func (s *dashboardService) Growth(ctx context.Context, months int) ([]model.GrowthBucket, error) {
	if months < 1 || int64(months) > math.MaxInt32 {
		return nil, ErrInvalidMonths
	}
	buckets, err := s.repo.GetGrowth(ctx, months)
	if err != nil {
		return nil, err
	}
	if len(buckets) != months {
		s.logger.Warn().Int("months", months).Int("buckets", len(buckets)).Msg("growth calendar returned unexpected bucket count")
	}
	return buckets, nil
}

func (s *dashboardService) Membership(ctx context.Context) (*model.Membership, error) {
	counts, err := s.repo.GetMembershipCounts(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.repo.GetSubscribersByPlan(ctx)
	if err != nil {
		return nil, err
	}

	freePct, premiumPct := membershipPercentages(counts)
	return &model.Membership{
		Free:              counts.Free,
		Premium:           counts.Premium,
		Total:             counts.Total(),
		FreePercentage:    freePct,
		PremiumPercentage: premiumPct,
		SubscribersByPlan: plans,
		Placeholders:      s.opts.Placeholders,
	}, nil
}

// membershipPercentages rounds each bucket's share half-up. An empty user
// table yields 0/0 rather than a division by zero.
func membershipPercentages(c model.MembershipCounts) (int, int) {
	total := c.Total()
	if total == 0 {
		return 0, 0
	}
	return roundPercent(c.Free, total), roundPercent(c.Premium, total)
}

func roundPercent(part, total int64) int {
	return int((part*200 + total) / (2 * total))
}

func (s *dashboardService) Engagement(ctx context.Context) (*model.Engagement, error) {
	articles, err := s.repo.GetTopArticles(ctx, topContentLimit)
	if err != nil {
		return nil, err
	}
	videos, err := s.repo.GetTopVideos(ctx, topContentLimit)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.GetEngagementTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Engagement{TopArticles: articles, TopVideos: videos, Totals: totals}, nil
}

func (s *dashboardService) Business(ctx context.Context) (*model.BusinessStats, error) {
	total, err := s.repo.CountBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.GetTopBusinessCategories(ctx, topCategoryLimit)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.GetReviewStats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.BusinessStats{TotalBusinesses: total, Categories: categories, Reviews: reviews}, nil
}

func (s *dashboardService) TopLocations(ctx context.Context, limit int) ([]model.LocationCount, error) {
	return s.repo.GetTopLocations(ctx, s.clampLocationLimit(limit))
}

func (s *dashboardService) clampLocationLimit(limit int) int {
	switch {
	case limit < 1:
		return s.opts.LocationsDefaultLimit
	case limit > s.opts.LocationsMaxLimit:
		return s.opts.LocationsMaxLimit
	default:
		return limit
	}
}

func (s *dashboardService) CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, "")
	if err != nil {
		return nil, err
	}
	matcher, err := NewCategoryMatcher(s.opts.CategoryMatchMode, categories)
	if err != nil {
		return nil, err
	}
	raw, err := s.categoryRepo.GetRawCategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	return matchCategoryUsage(matcher, raw), nil
}

func (s *dashboardService) Build(ctx context.Context) (*model.Dashboard, error) {
	var d model.Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Summary, err = s.Summary(ctx)
		return wrapPart("summary", err)
	})
	g.Go(func() (err error) {
		d.Growth, err = s.Growth(ctx, s.opts.GrowthDefaultMonths)
		return wrapPart("growth", err)
	})
	g.Go(func() (err error) {
		d.Membership, err = s.Membership(ctx)
		return wrapPart("membership", err)
	})
	g.Go(func() (err error) {
		d.Engagement, err = s.Engagement(ctx)
		return wrapPart("engagement", err)
	})
	g.Go(func() (err error) {
		d.Business, err = s.Business(ctx)
		return wrapPart("business", err)
	})
	g.Go(func() (err error) {
		d.Locations, err = s.TopLocations(ctx, s.opts.LocationsDefaultLimit)
		return wrapPart("locations", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func wrapPart(part string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("building dashboard %s: %w", part, err)
}
