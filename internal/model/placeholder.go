package model

// TierMetrics are illustrative per-tier numbers shown next to membership counts.
type TierMetrics struct {
	AvgActivity float64 `json:"avg_activity" yaml:"avg_activity"`
	Retention   float64 `json:"retention" yaml:"retention"`
	Conversion  float64 `json:"conversion,omitempty" yaml:"conversion"`
	Revenue     float64 `json:"revenue,omitempty" yaml:"revenue"`
}

// MembershipTrends are illustrative growth rates per tier.
type MembershipTrends struct {
	FreeGrowth    float64 `json:"free_growth" yaml:"free_growth"`
	PremiumGrowth float64 `json:"premium_growth" yaml:"premium_growth"`
}

// PlaceholderMetrics is configuration, not data: none of these numbers are
// computed from the database. They ride along in the membership response so
// the dashboard has something to render until real tracking exists.
type PlaceholderMetrics struct {
	FreeMetrics    TierMetrics      `json:"free_metrics" yaml:"free_metrics"`
	PremiumMetrics TierMetrics      `json:"premium_metrics" yaml:"premium_metrics"`
	Insights       []string         `json:"insights" yaml:"insights"`
	Trends         MembershipTrends `json:"trends" yaml:"trends"`
}

// Membership is the computed membership distribution.
type Membership struct {
	Free              int64
	Premium           int64
	Total             int64
	FreePercentage    int
	PremiumPercentage int
	SubscribersByPlan []PlanCount
	Placeholders      PlaceholderMetrics
}

// Dashboard is every aggregate the dashboard view renders.
type Dashboard struct {
	Summary    *Summary
	Growth     []GrowthBucket
	Membership *Membership
	Engagement *Engagement
	Business   *BusinessStats
	Locations  []LocationCount
}
