package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds one live-row count per tracked entity type.
type Summary struct {
	Users       int64 `json:"users"`
	Articles    int64 `json:"articles"`
	Videos      int64 `json:"videos"`
	Podcasts    int64 `json:"podcasts"`
	Events      int64 `json:"events"`
	Businesses  int64 `json:"businesses"`
	Jobs        int64 `json:"jobs"`
	Subscribers int64 `json:"subscribers"`
}

// GrowthBucket is one calendar month of activity counts.
type GrowthBucket struct {
	// MonthStart is the first day of the month as a calendar date at UTC midnight.
	MonthStart time.Time
	Users      int64
	Articles   int64
	Businesses int64
	Videos     int64
	Podcasts   int64
}

// MembershipCounts splits users into free and premium.
type MembershipCounts struct {
	Free    int64
	Premium int64
}

// Total is the number of classified users.
func (m MembershipCounts) Total() int64 {
	return m.Free + m.Premium
}

// PlanCount is the number of subscribers on one plan.
type PlanCount struct {
	Plan  string `json:"plan"`
	Count int64  `json:"count"`
}

// TopArticle is a published article with its pre-aggregated engagement.
type TopArticle struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Views    int64  `json:"views"`
	Comments int64  `json:"comments"`
	Likes    int64  `json:"likes"`
}

// TopVideo is a published video ranked by views.
type TopVideo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// EngagementTotals are platform-wide like and comment counts.
type EngagementTotals struct {
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
}

// Engagement is the engagement aggregate.
type Engagement struct {
	TopArticles []TopArticle
	TopVideos   []TopVideo
	Totals      EngagementTotals
}

// CategoryCount is the number of businesses in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ReviewStats is derived from business_reviews; nothing here is stored.
type ReviewStats struct {
	TotalReviews int64           `json:"total_reviews"`
	AvgRating    decimal.Decimal `json:"avg_rating" swaggertype:"string" example:"4.25"`
}

// BusinessStats is the business directory aggregate.
type BusinessStats struct {
	TotalBusinesses int64
	Categories      []CategoryCount
	Reviews         ReviewStats
}

// LocationCount is the number of users declaring one location.
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// Label is the three-letter English month name. Labels repeat across years.
func (b GrowthBucket) Label() string {
	return b.MonthStart.UTC().Month().String()[:3]
}

// Month is the year-qualified month key, e.g. "2026-01".
func (b GrowthBucket) Month() string {
	return b.MonthStart.UTC().Format("2006-01")
}
