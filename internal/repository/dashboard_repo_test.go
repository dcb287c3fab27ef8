package repository

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepo_Summary(t *testing.T) {
	pool := newTestPool(t)
	exec(t, pool, `INSERT INTO users (name) VALUES ('a'), ('b')`)
	exec(t, pool, `INSERT INTO articles (title, status) VALUES ('x', 'published'), ('y', 'draft')`)
	exec(t, pool, `INSERT INTO events (title, status) VALUES ('e1', NULL), ('e2', 'hidden'), ('e3', 'live')`)
	exec(t, pool, `INSERT INTO businesses (name, status) VALUES ('b1', NULL), ('b2', 'hidden')`)
	exec(t, pool, `INSERT INTO jobs (title, status) VALUES ('j1', 'visible'), ('j2', 'closed')`)
	exec(t, pool, `INSERT INTO subscribers (email, status) VALUES ('s1', 'active'), ('s2', 'unsubscribed')`)

	s, err := NewDashboardRepo(pool).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Summary{Users: 2, Articles: 1, Events: 2, Businesses: 1, Jobs: 1, Subscribers: 1}, *s)
}

func TestDashboardRepo_Growth(t *testing.T) {
	pool := newTestPool(t)
	exec(t, pool, `INSERT INTO users (name, created_at) VALUES ('now', now()), ('two months ago', now() - interval '2 months')`)
	exec(t, pool, `INSERT INTO videos (title, status, upload_date) VALUES ('v', 'published', now())`)
	exec(t, pool, `INSERT INTO articles (title, status, created_at) VALUES ('draft', 'draft', now())`)

	repo := NewDashboardRepo(pool)
	for _, months := range []int{1, 7, 13} {
		buckets, err := repo.GetGrowth(context.Background(), months)
		require.NoError(t, err)
		require.Len(t, buckets, months)
		for i := 1; i < len(buckets); i++ {
			gap := buckets[i].MonthStart.Sub(buckets[i-1].MonthStart)
			assert.Greater(t, gap, 27*24*time.Hour, "strictly ascending")
			assert.Less(t, gap, 32*24*time.Hour, "no gaps")
		}
		last := buckets[len(buckets)-1]
		assert.EqualValues(t, 1, last.Users)
		assert.EqualValues(t, 1, last.Videos)
		assert.EqualValues(t, 0, last.Articles, "drafts are not counted")
	}

	buckets, err := repo.GetGrowth(context.Background(), 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, buckets[0].Users)
	assert.EqualValues(t, 0, buckets[1].Users, "empty month is present with zero")
}

func TestDashboardRepo_GrowthLabelsFollowSessionTimeZone(t *testing.T) {
	base := newTestPool(t)

	// A session far east of UTC is already in the next month while UTC is not.
	cfg, err := pgxpool.ParseConfig(base.Config().ConnString())
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["timezone"] = "Pacific/Kiritimati"
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	buckets, err := NewDashboardRepo(pool).GetGrowth(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	kiritimati := time.FixedZone("LINT", 14*60*60)
	now := time.Now().In(kiritimati)
	assert.Equal(t, now.Format("2006-01"), buckets[1].Month())
	assert.Equal(t, now.Month().String()[:3], buckets[1].Label())
	assert.Equal(t, 1, buckets[1].MonthStart.Day())
}

func TestDashboardRepo_Membership(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDashboardRepo(pool)

	counts, err := repo.GetMembershipCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.MembershipCounts{}, counts)

	exec(t, pool, `
		INSERT INTO users (role) VALUES
			('Premium'), ('PREMIUM'), ('premium'),
			('user'), ('admin'), (NULL), ('user'), ('premium-trial'), ('free'), ('user')
	`)
	counts, err = repo.GetMembershipCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.MembershipCounts{Free: 7, Premium: 3}, counts)

	exec(t, pool, `INSERT INTO subscribers (email, status, plan) VALUES ('a', 'active', 'monthly'), ('b', 'active', NULL), ('c', 'active', 'monthly')`)
	plans, err := repo.GetSubscribersByPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.PlanCount{{Plan: "monthly", Count: 2}, {Plan: "unknown", Count: 1}}, plans)
}

func TestDashboardRepo_EngagementAvoidsFanOut(t *testing.T) {
	pool := newTestPool(t)
	exec(t, pool, `INSERT INTO articles (id, title, status, views) VALUES (1, 'busy', 'published', 10), (2, 'quiet', 'published', 5), (3, 'draft', 'draft', 100)`)
	exec(t, pool, `INSERT INTO comments (article_id, body) VALUES (1, 'c1'), (1, 'c2'), (NULL, 'on a video')`)
	exec(t, pool, `INSERT INTO likes (article_id) VALUES (1), (1), (1)`)

	repo := NewDashboardRepo(pool)
	articles, err := repo.GetTopArticles(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []model.TopArticle{
		{ID: 1, Title: "busy", Views: 10, Comments: 2, Likes: 3},
		{ID: 2, Title: "quiet", Views: 5, Comments: 0, Likes: 0},
	}, articles)

	totals, err := repo.GetEngagementTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.EngagementTotals{TotalLikes: 3, TotalComments: 3}, totals)
}

func TestDashboardRepo_TopArticlesLimit(t *testing.T) {
	pool := newTestPool(t)
	for i := 0; i < 8; i++ {
		exec(t, pool, `INSERT INTO articles (title, status, views) VALUES ($1, 'published', $2)`, "a", i)
	}
	articles, err := NewDashboardRepo(pool).GetTopArticles(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, articles, 5)
	for i := 1; i < len(articles); i++ {
		assert.GreaterOrEqual(t, articles[i-1].Views, articles[i].Views)
	}
}

func TestDashboardRepo_Business(t *testing.T) {
	pool := newTestPool(t)
	repo := NewDashboardRepo(pool)

	stats, err := repo.GetReviewStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalReviews)
	assert.Equal(t, "0", stats.AvgRating.String())

	// Ten categories; "Food" and "Beauty" tie at two, the rest have one.
	exec(t, pool, `
		INSERT INTO businesses (name, category, status) VALUES
			('1', 'Food', NULL), ('2', 'Food', 'active'), ('3', 'Beauty', NULL), ('4', 'Beauty', NULL),
			('5', 'Legal', NULL), ('6', 'Travel', NULL), ('7', 'Auto', NULL), ('8', 'Health', NULL),
			('9', 'Retail', NULL), ('10', 'Tech', NULL), ('11', NULL, NULL), ('12', 'Food', 'hidden')
	`)
	exec(t, pool, `INSERT INTO business_reviews (business_id, rating) VALUES (1, 5), (1, 4), (2, 4), (3, 4)`)

	total, err := repo.CountBusinesses(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 11, total)

	categories, err := repo.GetTopBusinessCategories(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, categories, 8)
	assert.Equal(t, model.CategoryCount{Category: "Beauty", Count: 2}, categories[0])
	assert.Equal(t, model.CategoryCount{Category: "Food", Count: 2}, categories[1])
	assert.Equal(t, "Auto", categories[2].Category)
	for i := 1; i < len(categories); i++ {
		assert.GreaterOrEqual(t, categories[i-1].Count, categories[i].Count)
	}

	stats, err = repo.GetReviewStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalReviews)
	assert.Equal(t, "4.25", stats.AvgRating.String())
}

func TestDashboardRepo_TopLocations(t *testing.T) {
	pool := newTestPool(t)
	exec(t, pool, `
		INSERT INTO users (location) VALUES
			('London'), ('London'), ('London'), (NULL), (NULL), (''), ('Toronto')
	`)

	locations, err := NewDashboardRepo(pool).GetTopLocations(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []model.LocationCount{
		{Location: "London", Count: 3},
		{Location: "Unknown", Count: 2},
		{Location: "", Count: 1},
	}, locations)
}
