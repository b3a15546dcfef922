package queue

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

// JobType identifies the kind of work queued
type JobType string

const (
	// JobTypeSchedule builds a day-indexed schedule
	JobTypeSchedule JobType = "schedule"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Terminal reports whether the job will not change again.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusFailed
}

// ScheduleRequest is the input of a schedule job.
type ScheduleRequest struct {
	Template []string         `json:"template"`
	Days     int              `json:"days"`
	Seed     int64            `json:"seed"`
	Config   generator.Config `json:"config"`
}

// Job is a queued unit of work and, once finished, its result.
type Job struct {
	ID       uuid.UUID       `json:"id"`
	Type     JobType         `json:"type"`
	Status   Status          `json:"status"`
	Schedule ScheduleRequest `json:"schedule"`

	Records []generator.BattleRecord `json:"records,omitempty"`
	Error   string                   `json:"error,omitempty"`

	EnqueuedAt time.Time `json:"enqueued_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewScheduleJob returns a pending job with a fresh id.
func NewScheduleJob(req ScheduleRequest) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:         uuid.New(),
		Type:       JobTypeSchedule,
		Status:     StatusPending,
		Schedule:   req,
		EnqueuedAt: now,
		UpdatedAt:  now,
	}
}

// ToJSON converts the job to JSON bytes for Redis
func (j *Job) ToJSON() ([]byte, error) {
	return json.Marshal(j)
}

// FromJSON parses a job from JSON bytes
func FromJSON(data []byte) (*Job, error) {
	var j Job
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return &j, nil
}
