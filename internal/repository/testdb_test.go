package repository

import (
	"context"
	"os"
	"testing"

	"backoffice/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestPool connects to TEST_DATABASE_URL, applies migrations, and empties
// every table the dashboard reads. Tests are skipped without a database.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration test")
	}

	ctx := context.Background()
	pool, err := database.New(ctx, url, database.Options{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool, "../../migrations", zerolog.Nop()))
	_, err = pool.Exec(ctx, `
		TRUNCATE users, categories, articles, videos, podcasts, events, businesses,
			business_reviews, jobs, subscribers, comments, likes, dashboard_snapshots
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
	return pool
}

func exec(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	_, err := pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}
