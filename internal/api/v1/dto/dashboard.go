package dto

import (
	"time"

	"backoffice/internal/model"
)

// GrowthQuery binds GET /growth query parameters.
type GrowthQuery struct {
	Months int `validate:"min=1,max=2147483647"`
}

// LocationsQuery binds GET /locations/top query parameters.
type LocationsQuery struct {
	Limit int `validate:"min=0"`
}

// SummaryDTO is the flat per-entity count object.
type SummaryDTO = model.Summary

// GrowthBucketDTO is one month of the growth series.
type GrowthBucketDTO struct {
	Name       string `json:"name"`
	Month      string `json:"month"`
	Users      int64  `json:"users"`
	Articles   int64  `json:"articles"`
	Businesses int64  `json:"businesses"`
	Videos     int64  `json:"videos"`
	Podcasts   int64  `json:"podcasts"`
}

// MembershipDTO mixes computed counts with placeholder metrics. Only free,
// premium, total, the two percentages and subscribers_by_plan come from data.
type MembershipDTO struct {
	Free              int64                  `json:"free"`
	Premium           int64                  `json:"premium"`
	Total             int64                  `json:"total"`
	FreePercentage    int                    `json:"free_percentage"`
	PremiumPercentage int                    `json:"premium_percentage"`
	SubscribersByPlan []model.PlanCount      `json:"subscribers_by_plan"`
	FreeMetrics       model.TierMetrics      `json:"free_metrics"`
	PremiumMetrics    model.TierMetrics      `json:"premium_metrics"`
	Insights          []string               `json:"insights"`
	Trends            model.MembershipTrends `json:"trends"`
}

// EngagementDTO lists top content and platform-wide engagement totals.
type EngagementDTO struct {
	TopArticles []model.TopArticle     `json:"topArticles"`
	TopVideos   []model.TopVideo       `json:"topVideos"`
	Totals      model.EngagementTotals `json:"totals"`
}

// BusinessDTO is the business directory aggregate.
type BusinessDTO struct {
	TotalBusinesses int64                 `json:"total_businesses"`
	Categories      []model.CategoryCount `json:"categories"`
	Reviews         model.ReviewStats     `json:"reviews"`
}

// LocationDTO is one user location bucket.
type LocationDTO = model.LocationCount

// CategoryUsageDTO is one matched category count per content source.
type CategoryUsageDTO = model.CategoryUsage

// DashboardDTO is the combined dashboard document used by snapshots and the CLI.
type DashboardDTO struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     SummaryDTO        `json:"summary"`
	Growth      []GrowthBucketDTO `json:"growth"`
	Membership  MembershipDTO     `json:"membership"`
	Engagement  EngagementDTO     `json:"engagement"`
	Business    BusinessDTO       `json:"business"`
	Locations   []LocationDTO     `json:"locations"`
}

func NewGrowthDTO(buckets []model.GrowthBucket) []GrowthBucketDTO {
	out := make([]GrowthBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, GrowthBucketDTO{
			Name:       b.Label(),
			Month:      b.Month(),
			Users:      b.Users,
			Articles:   b.Articles,
			Businesses: b.Businesses,
			Videos:     b.Videos,
			Podcasts:   b.Podcasts,
		})
	}
	return out
}

func NewMembershipDTO(m *model.Membership) MembershipDTO {
	plans := m.SubscribersByPlan
	if plans == nil {
		plans = []model.PlanCount{}
	}
	insights := m.Placeholders.Insights
	if insights == nil {
		insights = []string{}
	}
	return MembershipDTO{
		Free:              m.Free,
		Premium:           m.Premium,
		Total:             m.Total,
		FreePercentage:    m.FreePercentage,
		PremiumPercentage: m.PremiumPercentage,
		SubscribersByPlan: plans,
		FreeMetrics:       m.Placeholders.FreeMetrics,
		PremiumMetrics:    m.Placeholders.PremiumMetrics,
		Insights:          insights,
		Trends:            m.Placeholders.Trends,
	}
}

func NewEngagementDTO(e *model.Engagement) EngagementDTO {
	dto := EngagementDTO{TopArticles: e.TopArticles, TopVideos: e.TopVideos, Totals: e.Totals}
	if dto.TopArticles == nil {
		dto.TopArticles = []model.TopArticle{}
	}
	if dto.TopVideos == nil {
		dto.TopVideos = []model.TopVideo{}
	}
	return dto
}

func NewBusinessDTO(b *model.BusinessStats) BusinessDTO {
	dto := BusinessDTO{TotalBusinesses: b.TotalBusinesses, Categories: b.Categories, Reviews: b.Reviews}
	if dto.Categories == nil {
		dto.Categories = []model.CategoryCount{}
	}
	return dto
}

// NewDashboardDTO renders a built dashboard in the same shapes the individual endpoints return.
func NewDashboardDTO(d *model.Dashboard, generatedAt time.Time) DashboardDTO {
	locations := d.Locations
	if locations == nil {
		locations = []model.LocationCount{}
	}
	return DashboardDTO{
		GeneratedAt: generatedAt.UTC(),
		Summary:     *d.Summary,
		Growth:      NewGrowthDTO(d.Growth),
		Membership:  NewMembershipDTO(d.Membership),
		Engagement:  NewEngagementDTO(d.Engagement),
		Business:    NewBusinessDTO(d.Business),
		Locations:   locations,
	}
}
