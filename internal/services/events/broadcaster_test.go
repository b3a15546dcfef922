package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/queue"
)

func TestBroadcaster_JobChanged(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, Channel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	b := NewBroadcaster(client, logger)

	job := queue.NewScheduleJob(queue.ScheduleRequest{Days: 2})
	require.NoError(t, b.JobChanged(ctx, job), "pending publishes nothing")

	job.Status = queue.StatusDone
	job.Records = make([]generator.BattleRecord, 2)
	require.NoError(t, b.JobChanged(ctx, job))

	select {
	case msg := <-sub.Channel():
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, EventTypeJobDone, ev.Type)
		assert.Equal(t, job.ID.String(), ev.JobID)
		assert.Equal(t, 2, ev.Rows)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}
