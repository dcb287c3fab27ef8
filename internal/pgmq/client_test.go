package pgmq

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set, skip pgmq integration test")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS pgmq"); err != nil {
		t.Skipf("pgmq extension unavailable: %v", err)
	}
	queue := "test_snapshots_" + time.Now().Format("150405")
	_, err = pool.Exec(ctx, "SELECT pgmq.create($1)", queue)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "SELECT pgmq.drop_queue($1)", queue)
	})
	return New(pool), queue
}

func TestSendReadDelete(t *testing.T) {
	c, queue := newTestClient(t)
	ctx := context.Background()

	id, err := c.Send(ctx, queue, []byte(`{"snapshot_id":"abc"}`))
	require.NoError(t, err)
	assert.Positive(t, id)

	msgs, err := c.ReadWithPoll(ctx, queue, 1, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, id, msgs[0].ID)
	assert.Equal(t, 1, msgs[0].ReadCt)
	assert.JSONEq(t, `{"snapshot_id":"abc"}`, string(msgs[0].Data))

	require.NoError(t, c.Delete(ctx, queue, []int64{id}))
}
