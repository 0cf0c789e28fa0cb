package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func TestQueue_EnqueueDequeue(t *testing.T) {
	client := setupTestRedis(t)
	q := NewQueue(client, "thumbnail_jobs")
	ctx := context.Background()

	err := q.Enqueue(ctx, Job{UserID: "user-1", FileID: "file-1"})
	require.NoError(t, err)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	job, raw, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "user-1", job.UserID)
	assert.Equal(t, "file-1", job.FileID)
	assert.NotEmpty(t, raw)

	// Dequeued job sits in the pending list until acked
	pending, err := client.LLen(ctx, "thumbnail_jobs:pending").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	err = q.Ack(ctx, raw)
	require.NoError(t, err)

	pending, err = client.LLen(ctx, "thumbnail_jobs:pending").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending)
}

func TestQueue_DequeueEmpty(t *testing.T) {
	client := setupTestRedis(t)
	q := NewQueue(client, "thumbnail_jobs")

	job, raw, err := q.Dequeue(context.Background(), 50*time.Millisecond)

	assert.NoError(t, err)
	assert.Nil(t, job)
	assert.Empty(t, raw)
}

func TestQueue_FIFOOrder(t *testing.T) {
	client := setupTestRedis(t)
	q := NewQueue(client, "thumbnail_jobs")
	ctx := context.Background()

	for _, id := range []string{"file-1", "file-2", "file-3"} {
		require.NoError(t, q.Enqueue(ctx, Job{UserID: "user-1", FileID: id}))
	}

	for _, want := range []string{"file-1", "file-2", "file-3"} {
		job, raw, err := q.Dequeue(ctx, 100*time.Millisecond)
		require.NoError(t, err)
		require.NotNil(t, job)
		assert.Equal(t, want, job.FileID)
		require.NoError(t, q.Ack(ctx, raw))
	}
}

func TestQueue_Reclaim(t *testing.T) {
	client := setupTestRedis(t)
	q := NewQueue(client, "thumbnail_jobs")
	ctx := context.Background()

	// Simulate a worker crash: two jobs dequeued but never acked
	require.NoError(t, q.Enqueue(ctx, Job{UserID: "user-1", FileID: "file-1"}))
	require.NoError(t, q.Enqueue(ctx, Job{UserID: "user-1", FileID: "file-2"}))
	_, _, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	_, _, err = q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)

	moved, err := q.Reclaim(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Redelivery preserves the original order
	job, _, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "file-1", job.FileID)
}

func TestQueue_ReclaimEmpty(t *testing.T) {
	client := setupTestRedis(t)
	q := NewQueue(client, "thumbnail_jobs")

	moved, err := q.Reclaim(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, moved)
}
