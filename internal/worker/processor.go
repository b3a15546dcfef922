package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/queue"
)

// JobStore persists job state changes.
type JobStore interface {
	Save(ctx context.Context, job *queue.Job) error
}

// ScheduleArchive receives finished schedules.
type ScheduleArchive interface {
	SaveSchedule(ctx context.Context, id string, seed int64, records []generator.BattleRecord) error
}

// Notifier is told about every job state change.
type Notifier interface {
	JobChanged(ctx context.Context, job *queue.Job) error
}

// ScheduleProcessor builds the schedule a job asks for and records the
// outcome on the job.
type ScheduleProcessor struct {
	gen     *generator.Generator
	store   JobStore
	archive ScheduleArchive
	notify  Notifier
	logger  *slog.Logger
}

// NewScheduleProcessor creates a processor. archive may be nil.
func NewScheduleProcessor(gen *generator.Generator, store JobStore, archive ScheduleArchive, logger *slog.Logger) *ScheduleProcessor {
	return &ScheduleProcessor{gen: gen, store: store, archive: archive, logger: logger}
}

// WithNotifier sets the listener for job state changes.
func (p *ScheduleProcessor) WithNotifier(n Notifier) *ScheduleProcessor {
	p.notify = n
	return p
}

func (p *ScheduleProcessor) save(ctx context.Context, job *queue.Job) error {
	if err := p.store.Save(ctx, job); err != nil {
		return err
	}
	if p.notify != nil {
		if err := p.notify.JobChanged(ctx, job); err != nil {
			// Don't fail the job just because event publishing failed
			p.logger.Warn("Failed to publish job event", "job_id", job.ID.String(), "error", err)
		}
	}
	return nil
}

// Process runs job to completion. A generation failure marks the job failed
// and is not returned; only failures to record state are.
func (p *ScheduleProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeSchedule {
		return p.finish(ctx, job, nil, fmt.Errorf("unsupported job type %q", job.Type))
	}

	job.Status = queue.StatusRunning
	job.UpdatedAt = time.Now().UTC()
	if err := p.save(ctx, job); err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}

	req := job.Schedule
	records, err := p.gen.BuildSchedule(ctx, req.Template, req.Days, req.Seed, req.Config)
	if err == nil && p.archive != nil {
		if aerr := p.archive.SaveSchedule(ctx, job.ID.String(), req.Seed, records); aerr != nil {
			p.logger.Warn("Failed to archive schedule", "job_id", job.ID.String(), "error", aerr)
		}
	}
	return p.finish(ctx, job, records, err)
}

func (p *ScheduleProcessor) finish(ctx context.Context, job *queue.Job, records []generator.BattleRecord, runErr error) error {
	job.UpdatedAt = time.Now().UTC()
	if runErr != nil {
		job.Status = queue.StatusFailed
		job.Error = runErr.Error()
		job.Records = nil
		p.logger.Error("Schedule job failed", "job_id", job.ID.String(), "error", runErr)
	} else {
		job.Status = queue.StatusDone
		job.Records = records
		p.logger.Info("Schedule job complete", "job_id", job.ID.String(), "rows", len(records))
	}
	if err := p.save(ctx, job); err != nil {
		return fmt.Errorf("failed to save job result: %w", err)
	}
	return nil
}
