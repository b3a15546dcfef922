package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/battle-engine/pkg/queue"
)

const (
	workerTimeout = 5 * time.Second
)

// Source yields queued jobs.
type Source interface {
	BlockingDequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error)
}

// Processor handles one job.
type Processor interface {
	Process(ctx context.Context, job *queue.Job) error
}

// Worker pulls jobs from the queue and hands them to a processor
type Worker struct {
	id        string
	source    Source
	processor Processor
	log       *slog.Logger
	timeout   time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
}

// New creates a new worker instance
func New(source Source, processor Processor, log *slog.Logger, workerID string) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	if workerID == "" {
		workerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}

	return &Worker{
		id:        workerID,
		source:    source,
		processor: processor,
		log:       log,
		timeout:   workerTimeout,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ID returns the worker id.
func (w *Worker) ID() string { return w.id }

// Start processes jobs until Stop is called
func (w *Worker) Start() error {
	w.log.Info("Worker starting", "worker_id", w.id)

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info("Worker shutting down", "worker_id", w.id)
			return nil
		default:
			if err := w.processNext(); err != nil {
				w.log.Error("Error processing job", "error", err, "worker_id", w.id)
				// Continue processing even on error
				select {
				case <-w.ctx.Done():
				case <-time.After(time.Second):
				}
			}
		}
	}
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.log.Info("Worker stop requested", "worker_id", w.id)
	w.cancel()
}

// processNext blocks for the next job and processes it. An empty wait is
// not an error.
func (w *Worker) processNext() error {
	job, err := w.source.BlockingDequeue(w.ctx, w.timeout)
	if err != nil {
		return fmt.Errorf("failed to dequeue job: %w", err)
	}
	if job == nil {
		return nil
	}

	w.log.Info("Processing job",
		"worker_id", w.id,
		"job_id", job.ID.String(),
		"type", job.Type,
	)
	start := time.Now()
	if err := w.processor.Process(w.ctx, job); err != nil {
		return fmt.Errorf("job %s: %w", job.ID.String(), err)
	}
	w.log.Info("Job processed", "worker_id", w.id, "job_id", job.ID.String(), "duration", time.Since(start))
	return nil
}
