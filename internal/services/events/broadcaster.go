package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/battle-engine/pkg/queue"
)

// Channel is the pub/sub channel job events are published on.
const Channel = "job-events"

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeJobRunning EventType = "job.running"
	EventTypeJobDone    EventType = "job.done"
	EventTypeJobFailed  EventType = "job.failed"
)

// Event represents a generic event structure
type Event struct {
	Type  EventType `json:"type"`
	JobID string    `json:"job_id"`
	Rows  int       `json:"rows,omitempty"`
	Error string    `json:"error,omitempty"`
}

// Broadcaster publishes job events to Redis Pub/Sub
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// JobChanged publishes the event matching the job's status. Pending jobs
// publish nothing.
func (b *Broadcaster) JobChanged(ctx context.Context, job *queue.Job) error {
	event := Event{JobID: job.ID.String()}
	switch job.Status {
	case queue.StatusRunning:
		event.Type = EventTypeJobRunning
	case queue.StatusDone:
		event.Type = EventTypeJobDone
		event.Rows = len(job.Records)
	case queue.StatusFailed:
		event.Type = EventTypeJobFailed
		event.Error = job.Error
	default:
		return nil
	}
	return b.publish(ctx, event)
}

func (b *Broadcaster) publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := b.redisClient.Publish(ctx, Channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "type", event.Type, "job_id", event.JobID)
		return fmt.Errorf("failed to publish event: %w", err)
	}
	b.logger.Debug("Published event", "type", event.Type, "job_id", event.JobID)
	return nil
}
