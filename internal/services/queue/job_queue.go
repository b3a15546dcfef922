package queue

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/battle-engine/pkg/queue"
	"github.com/redis/go-redis/v9"
)

const (
	jobsKey = "schedule-jobs"

	// JobTTL bounds how long a job and its result stay readable.
	JobTTL = 24 * time.Hour
)

var ErrJobNotFound = errors.New("job not found")

func jobKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id.String())
}

// JobQueue holds pending schedule jobs and the status of every job.
type JobQueue struct {
	client *Client
}

func NewJobQueue(client *Client) *JobQueue {
	return &JobQueue{client: client}
}

// Enqueue stores a new pending job for req and pushes it onto the queue.
func (q *JobQueue) Enqueue(ctx context.Context, req queue.ScheduleRequest) (*queue.Job, error) {
	job := queue.NewScheduleJob(req)
	if err := q.Save(ctx, job); err != nil {
		return nil, err
	}
	if err := q.client.rdb.RPush(ctx, jobsKey, job.ID.String()).Err(); err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}
	q.client.logger.Debug("Job enqueued", "job_id", job.ID.String(), "days", req.Days)
	return job, nil
}

// Save writes the job's current state.
func (q *JobQueue) Save(ctx context.Context, job *queue.Job) error {
	data, err := job.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize job: %w", err)
	}
	if err := q.client.rdb.Set(ctx, jobKey(job.ID), data, JobTTL).Err(); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// Get returns the job with id or ErrJobNotFound.
func (q *JobQueue) Get(ctx context.Context, id uuid.UUID) (*queue.Job, error) {
	data, err := q.client.rdb.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	job, err := queue.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	return job, nil
}

// BlockingDequeue waits up to timeout for the next job. It returns nil, nil
// when the wait ends without one.
func (q *JobQueue) BlockingDequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error) {
	result, err := q.client.rdb.BLPop(ctx, timeout, jobsKey).Result()
	if err != nil {
		var netErr net.Error
		if errors.Is(err, redis.Nil) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
			(errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue job: %w", err)
	}

	// BLPop returns [key, value]
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected BLPop result: %v", result)
	}
	id, err := uuid.Parse(result[1])
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", result[1], err)
	}
	job, err := q.Get(ctx, id)
	if errors.Is(err, ErrJobNotFound) {
		q.client.logger.Warn("Dropping expired job", "job_id", id.String())
		return nil, nil
	}
	return job, err
}

// Depth returns the number of jobs waiting.
func (q *JobQueue) Depth(ctx context.Context) (int, error) {
	count, err := q.client.rdb.LLen(ctx, jobsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue depth: %w", err)
	}
	return int(count), nil
}
