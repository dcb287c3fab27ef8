package repository

import (
	"context"
	"fmt"

	"backoffice/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// DashboardRepository runs the read-only aggregation queries behind the dashboard.
type DashboardRepository interface {
	// GetSummary counts live rows of every tracked entity in a single statement.
	GetSummary(ctx context.Context) (*model.Summary, error)
	// GetGrowth returns exactly months buckets ending at the current month, oldest first.
	GetGrowth(ctx context.Context, months int) ([]model.GrowthBucket, error)
	GetMembershipCounts(ctx context.Context) (model.MembershipCounts, error)
	GetSubscribersByPlan(ctx context.Context) ([]model.PlanCount, error)
	GetTopArticles(ctx context.Context, limit int) ([]model.TopArticle, error)
	GetTopVideos(ctx context.Context, limit int) ([]model.TopVideo, error)
	GetEngagementTotals(ctx context.Context) (model.EngagementTotals, error)
	CountBusinesses(ctx context.Context) (int64, error)
	GetTopBusinessCategories(ctx context.Context, limit int) ([]model.CategoryCount, error)
	GetReviewStats(ctx context.Context) (model.ReviewStats, error)
	GetTopLocations(ctx context.Context, limit int) ([]model.LocationCount, error)
}

type dashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepo creates a new DashboardRepository.
func NewDashboardRepo(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepo{pool: pool}
}

var summaryQuery = `
	SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM articles WHERE ` + model.LiveArticle + `),
		(SELECT COUNT(*) FROM videos WHERE ` + model.LiveVideo + `),
		(SELECT COUNT(*) FROM podcasts WHERE ` + model.LivePodcast + `),
		(SELECT COUNT(*) FROM events WHERE ` + model.LiveEvent + `),
		(SELECT COUNT(*) FROM businesses WHERE ` + model.LiveBusiness + `),
		(SELECT COUNT(*) FROM jobs WHERE ` + model.LiveJob + `),
		(SELECT COUNT(*) FROM subscribers WHERE ` + model.LiveSubscriber + `)
`

func (r *dashboardRepo) GetSummary(ctx context.Context) (*model.Summary, error) {
	var s model.Summary
	err := r.pool.QueryRow(ctx, summaryQuery).Scan(
		&s.Users,
		&s.Articles,
		&s.Videos,
		&s.Podcasts,
		&s.Events,
		&s.Businesses,
		&s.Jobs,
		&s.Subscribers,
	)
	if err != nil {
		return nil, fmt.Errorf("counting summary metrics: %w", err)
	}
	return &s, nil
}

// Every per-table series is grouped on its own date column and left-joined
// onto the synthetic calendar, so empty months survive with zero counts.
// Months are truncated in the session time zone and returned as plain dates.
var growthQuery = `
	WITH calendar AS (
		SELECT date_trunc('month', now() - make_interval(months => n)) AS month_start
		FROM generate_series($1::int - 1, 0, -1) AS n
	),
	u AS (
		SELECT date_trunc('month', created_at) AS month_start, COUNT(*) AS c
		FROM users GROUP BY 1
	),
	a AS (
		SELECT date_trunc('month', created_at) AS month_start, COUNT(*) AS c
		FROM articles WHERE ` + model.LiveArticle + ` GROUP BY 1
	),
	b AS (
		SELECT date_trunc('month', created_at) AS month_start, COUNT(*) AS c
		FROM businesses WHERE ` + model.LiveBusiness + ` GROUP BY 1
	),
	v AS (
		SELECT date_trunc('month', upload_date) AS month_start, COUNT(*) AS c
		FROM videos WHERE ` + model.LiveVideo + ` GROUP BY 1
	),
	p AS (
		SELECT date_trunc('month', created_at) AS month_start, COUNT(*) AS c
		FROM podcasts WHERE ` + model.LivePodcast + ` GROUP BY 1
	)
	SELECT
		calendar.month_start::date,
		COALESCE(u.c, 0),
		COALESCE(a.c, 0),
		COALESCE(b.c, 0),
		COALESCE(v.c, 0),
		COALESCE(p.c, 0)
	FROM calendar
	LEFT JOIN u ON u.month_start = calendar.month_start
	LEFT JOIN a ON a.month_start = calendar.month_start
	LEFT JOIN b ON b.month_start = calendar.month_start
	LEFT JOIN v ON v.month_start = calendar.month_start
	LEFT JOIN p ON p.month_start = calendar.month_start
	ORDER BY calendar.month_start ASC
`

func (r *dashboardRepo) GetGrowth(ctx context.Context, months int) ([]model.GrowthBucket, error) {
	rows, err := r.pool.Query(ctx, growthQuery, months)
	if err != nil {
		return nil, fmt.Errorf("querying growth for %d months: %w", months, err)
	}
	defer rows.Close()

	buckets := make([]model.GrowthBucket, 0, months)
	for rows.Next() {
		var b model.GrowthBucket
		if err := rows.Scan(&b.MonthStart, &b.Users, &b.Articles, &b.Businesses, &b.Videos, &b.Podcasts); err != nil {
			return nil, fmt.Errorf("scanning growth bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating growth buckets: %w", err)
	}
	return buckets, nil
}

func (r *dashboardRepo) GetMembershipCounts(ctx context.Context) (model.MembershipCounts, error) {
	var m model.MembershipCounts
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE role IS NULL OR role NOT ILIKE $1),
			COUNT(*) FILTER (WHERE role ILIKE $1)
		FROM users
	`
	if err := r.pool.QueryRow(ctx, q, model.PremiumRolePattern).Scan(&m.Free, &m.Premium); err != nil {
		return m, fmt.Errorf("counting membership: %w", err)
	}
	return m, nil
}

func (r *dashboardRepo) GetSubscribersByPlan(ctx context.Context) ([]model.PlanCount, error) {
	const q = `
		SELECT COALESCE(plan, 'unknown') AS plan, COUNT(*) AS count
		FROM subscribers
		GROUP BY 1
		ORDER BY count DESC, plan ASC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("counting subscribers by plan: %w", err)
	}
	defer rows.Close()

	plans := []model.PlanCount{}
	for rows.Next() {
		var p model.PlanCount
		if err := rows.Scan(&p.Plan, &p.Count); err != nil {
			return nil, fmt.Errorf("scanning plan count: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Comments and likes are each collapsed to one row per article before the
// join; joining both child tables directly would multiply rows.
var topArticlesQuery = `
	SELECT
		a.id,
		a.title,
		COALESCE(a.views, 0) AS views,
		COALESCE(c.cnt, 0) AS comments,
		COALESCE(l.cnt, 0) AS likes
	FROM articles a
	LEFT JOIN (
		SELECT article_id, COUNT(*) AS cnt
		FROM comments
		WHERE article_id IS NOT NULL
		GROUP BY article_id
	) c ON c.article_id = a.id
	LEFT JOIN (
		SELECT article_id, COUNT(*) AS cnt
		FROM likes
		WHERE article_id IS NOT NULL
		GROUP BY article_id
	) l ON l.article_id = a.id
	WHERE a.` + model.LiveArticle + `
	ORDER BY views DESC, a.id ASC
	LIMIT $1
`

func (r *dashboardRepo) GetTopArticles(ctx context.Context, limit int) ([]model.TopArticle, error) {
	rows, err := r.pool.Query(ctx, topArticlesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top articles: %w", err)
	}
	defer rows.Close()

	articles := []model.TopArticle{}
	for rows.Next() {
		var a model.TopArticle
		if err := rows.Scan(&a.ID, &a.Title, &a.Views, &a.Comments, &a.Likes); err != nil {
			return nil, fmt.Errorf("scanning top article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

var topVideosQuery = `
	SELECT id, title, COALESCE(views, 0) AS views
	FROM videos
	WHERE ` + model.LiveVideo + `
	ORDER BY views DESC, id ASC
	LIMIT $1
`

func (r *dashboardRepo) GetTopVideos(ctx context.Context, limit int) ([]model.TopVideo, error) {
	rows, err := r.pool.Query(ctx, topVideosQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top videos: %w", err)
	}
	defer rows.Close()

	videos := []model.TopVideo{}
	for rows.Next() {
		var v model.TopVideo
		if err := rows.Scan(&v.ID, &v.Title, &v.Views); err != nil {
			return nil, fmt.Errorf("scanning top video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *dashboardRepo) GetEngagementTotals(ctx context.Context) (model.EngagementTotals, error) {
	var t model.EngagementTotals
	const q = `SELECT (SELECT COUNT(*) FROM likes), (SELECT COUNT(*) FROM comments)`
	if err := r.pool.QueryRow(ctx, q).Scan(&t.TotalLikes, &t.TotalComments); err != nil {
		return t, fmt.Errorf("counting likes and comments: %w", err)
	}
	return t, nil
}

func (r *dashboardRepo) CountBusinesses(ctx context.Context) (int64, error) {
	var count int64
	q := `SELECT COUNT(*) FROM businesses WHERE ` + model.LiveBusiness
	if err := r.pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting businesses: %w", err)
	}
	return count, nil
}

var topBusinessCategoriesQuery = `
	SELECT COALESCE(category, '` + model.UncategorizedBusiness + `') AS category, COUNT(*) AS count
	FROM businesses
	WHERE ` + model.LiveBusiness + `
	GROUP BY 1
	ORDER BY count DESC, category ASC
	LIMIT $1
`

func (r *dashboardRepo) GetTopBusinessCategories(ctx context.Context, limit int) ([]model.CategoryCount, error) {
	rows, err := r.pool.Query(ctx, topBusinessCategoriesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("querying business categories: %w", err)
	}
	defer rows.Close()

	categories := []model.CategoryCount{}
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning business category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *dashboardRepo) GetReviewStats(ctx context.Context) (model.ReviewStats, error) {
	var (
		stats model.ReviewStats
		avg   string
	)
	const q = `
		SELECT COUNT(*), COALESCE(ROUND(AVG(rating)::numeric, 2), 0)::text
		FROM business_reviews
	`
	if err := r.pool.QueryRow(ctx, q).Scan(&stats.TotalReviews, &avg); err != nil {
		return stats, fmt.Errorf("aggregating business reviews: %w", err)
	}
	rating, err := decimal.NewFromString(avg)
	if err != nil {
		return stats, fmt.Errorf("parsing average rating %q: %w", avg, err)
	}
	stats.AvgRating = rating
	return stats, nil
}

// COALESCE only folds NULL; an empty-string location stays its own bucket.
var topLocationsQuery = `
	SELECT COALESCE(location, '` + model.UnknownLocation + `') AS location, COUNT(*) AS count
	FROM users
	GROUP BY 1
	ORDER BY count DESC, location ASC
	LIMIT $1
`

func (r *dashboardRepo) GetTopLocations(ctx context.Context, limit int) ([]model.LocationCount, error) {
	rows, err := r.pool.Query(ctx, topLocationsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top locations: %w", err)
	}
	defer rows.Close()

	locations := []model.LocationCount{}
	for rows.Next() {
		var l model.LocationCount
		if err := rows.Scan(&l.Location, &l.Count); err != nil {
			return nil, fmt.Errorf("scanning location count: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
