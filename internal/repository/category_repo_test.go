package repository

import (
	"context"
	"testing"

	"backoffice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo(t *testing.T) {
	pool := newTestPool(t)
	exec(t, pool, `INSERT INTO categories (name, type) VALUES ('Tech', 'article'), ('Food', 'business'), ('Music', 'podcast')`)
	exec(t, pool, `INSERT INTO articles (title, status, category) VALUES ('a', 'published', 'Tech'), ('b', 'draft', 'Tech'), ('c', 'published', 'tech'), ('d', 'published', NULL)`)
	exec(t, pool, `INSERT INTO businesses (name, category) VALUES ('x', 'Food')`)

	repo := NewCategoryRepo(pool)

	t.Run("list all ordered by name", func(t *testing.T) {
		categories, err := repo.ListCategories(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, []string{"Food", "Music", "Tech"}, []string{categories[0].Name, categories[1].Name, categories[2].Name})
	})

	t.Run("filter by type", func(t *testing.T) {
		categories, err := repo.ListCategories(context.Background(), "business")
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Food", categories[0].Name)
	})

	t.Run("raw counts per source", func(t *testing.T) {
		raw, err := repo.GetRawCategoryCounts(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.RawCategoryCount{
			{Source: model.SourceArticles, Category: "Tech", Count: 2},
			{Source: model.SourceArticles, Category: "tech", Count: 1},
			{Source: model.SourceBusinesses, Category: "Food", Count: 1},
		}, raw)
	})
}

func TestSnapshotRepo(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSnapshotRepo(pool)
	ctx := context.Background()

	snap := &model.Snapshot{
		ID:          "7f1f2a52-4a0d-4a8b-9a55-0c5f1f6f3a10",
		Status:      model.SnapshotQueued,
		RequestedBy: "admin-1",
		StorageKey:  "snapshots/7f1f2a52-4a0d-4a8b-9a55-0c5f1f6f3a10.json",
	}
	require.NoError(t, repo.Create(ctx, snap))
	assert.False(t, snap.CreatedAt.IsZero())

	missing, err := repo.GetByID(ctx, "00000000-0000-4000-8000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.MarkCompleted(ctx, snap.ID))
	got, err := repo.GetByID(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SnapshotCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Nil(t, got.Error)
}
