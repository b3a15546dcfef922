package queue

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jwebster45206/battle-engine/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	client, err := NewClient("redis://"+mr.Addr(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestJobQueue_EnqueueAndDequeue(t *testing.T) {
	client, _ := setupTestRedis(t)
	q := NewJobQueue(client)
	ctx := context.Background()

	job, err := q.Enqueue(ctx, queue.ScheduleRequest{Template: []string{"Romans vs. Samurai"}, Days: 2, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, queue.StatusPending, job.Status)

	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	got, err := q.BlockingDequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, 2, got.Schedule.Days)

	depth, err = q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestJobQueue_SaveAndGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	q := NewJobQueue(client)
	ctx := context.Background()

	job, err := q.Enqueue(ctx, queue.ScheduleRequest{Days: 1})
	require.NoError(t, err)
	assert.Equal(t, JobTTL, mr.TTL(jobKey(job.ID)))

	job.Status = queue.StatusDone
	require.NoError(t, q.Save(ctx, job))

	got, err := q.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusDone, got.Status)
}

func TestJobQueue_GetMissing(t *testing.T) {
	client, _ := setupTestRedis(t)
	q := NewJobQueue(client)

	_, err := q.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobQueue_DequeueEmpty(t *testing.T) {
	client, _ := setupTestRedis(t)
	q := NewJobQueue(client)

	got, err := q.BlockingDequeue(context.Background(), time.Second)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestJobQueue_DequeueExpiredJob(t *testing.T) {
	client, mr := setupTestRedis(t)
	q := NewJobQueue(client)
	ctx := context.Background()

	job, err := q.Enqueue(ctx, queue.ScheduleRequest{Days: 1})
	require.NoError(t, err)
	mr.Del(jobKey(job.ID))

	got, err := q.BlockingDequeue(ctx, time.Second)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewClient_BadURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	_, err := NewClient("://nope", logger)
	assert.Error(t, err)
}
