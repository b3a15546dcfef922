package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	queuesvc "github.com/jwebster45206/battle-engine/internal/services/queue"
	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/queue"
)

// JobQueue accepts schedule jobs and reports their state.
type JobQueue interface {
	Enqueue(ctx context.Context, req queue.ScheduleRequest) (*queue.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*queue.Job, error)
}

// ScheduleArchive stores built schedules and serves them back by id.
type ScheduleArchive interface {
	SaveSchedule(ctx context.Context, id string, seed int64, records []generator.BattleRecord) error
	LoadSchedule(ctx context.Context, id string) (*storage.ScheduleRun, error)
	ListSchedules(ctx context.Context, limit int) ([]storage.ScheduleRun, error)
}

const maxListLimit = 200

type ScheduleRequest struct {
	RunOptions
	Template []string `json:"template"`
	Days     int      `json:"days"`
	Async    bool     `json:"async"`
}

type ScheduleResponse struct {
	ID      string                   `json:"id"`
	Status  queue.Status             `json:"status"`
	Records []generator.BattleRecord `json:"records,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// ScheduleListResponse lists archived schedules without their records.
type ScheduleListResponse struct {
	Schedules []storage.ScheduleRun `json:"schedules"`
}

// ScheduleHandler serves:
// POST /v1/schedules      - build inline, or enqueue when async is set
// GET  /v1/schedules      - recently archived schedules
// GET  /v1/schedules/{id} - job status and result, or the archived run
type ScheduleHandler struct {
	gen         *generator.Generator
	jobs        JobQueue
	archive     ScheduleArchive
	defaultSeed int64
	logger      *slog.Logger
}

// NewScheduleHandler creates a handler; jobs and archive may be nil.
func NewScheduleHandler(gen *generator.Generator, jobs JobQueue, archive ScheduleArchive, defaultSeed int64, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{gen: gen, jobs: jobs, archive: archive, defaultSeed: defaultSeed, logger: logger}
}

func (h *ScheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/schedules"), "/")

	switch {
	case r.Method == http.MethodPost && id == "":
		h.handleCreate(w, r)
	case r.Method == http.MethodGet && id == "":
		h.handleList(w, r)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported: POST /v1/schedules, GET /v1/schedules, GET /v1/schedules/{id}")
	}
}

func (h *ScheduleHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Invalid schedule request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := generator.ValidateSchedule(req.Template, req.Days); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	cfg := req.config(h.logger)
	seed := req.seed(h.defaultSeed)
	ctx := r.Context()

	if req.Async {
		if h.jobs == nil {
			writeError(w, h.logger, http.StatusServiceUnavailable, "Job queue is not available")
			return
		}
		job, err := h.jobs.Enqueue(ctx, queue.ScheduleRequest{Template: req.Template, Days: req.Days, Seed: seed, Config: cfg})
		if err != nil {
			h.logger.Error("Failed to enqueue schedule", "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to enqueue schedule")
			return
		}
		writeJSON(w, h.logger, http.StatusAccepted, ScheduleResponse{ID: job.ID.String(), Status: job.Status})
		return
	}

	records, err := h.gen.BuildSchedule(ctx, req.Template, req.Days, seed, cfg)
	if err != nil {
		if errors.Is(err, generator.ErrEmptyTemplate) || errors.Is(err, generator.ErrInvalidDays) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to build schedule", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to build schedule")
		return
	}

	id := uuid.New().String()
	if h.archive != nil {
		if err := h.archive.SaveSchedule(ctx, id, seed, records); err != nil {
			h.logger.Warn("Failed to archive schedule", "id", id, "error", err)
		}
	}
	writeJSON(w, h.logger, http.StatusOK, ScheduleResponse{ID: id, Status: queue.StatusDone, Records: records})
}

func (h *ScheduleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		writeJSON(w, h.logger, http.StatusOK, ScheduleListResponse{Schedules: []storage.ScheduleRun{}})
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, h.logger, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = min(n, maxListLimit)
	}
	runs, err := h.archive.ListSchedules(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list schedules", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list schedules")
		return
	}
	if runs == nil {
		runs = []storage.ScheduleRun{}
	}
	writeJSON(w, h.logger, http.StatusOK, ScheduleListResponse{Schedules: runs})
}

// handleGet asks the job queue first, then the archive. Inline schedules
// only exist in the archive; queued jobs expire from redis but stay archived.
func (h *ScheduleHandler) handleGet(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}
	ctx := r.Context()

	if h.jobs != nil {
		job, err := h.jobs.Get(ctx, id)
		switch {
		case err == nil:
			writeJSON(w, h.logger, http.StatusOK, ScheduleResponse{ID: job.ID.String(), Status: job.Status, Records: job.Records, Error: job.Error})
			return
		case !errors.Is(err, queuesvc.ErrJobNotFound):
			h.logger.Error("Failed to load job", "error", err, "job_id", idStr)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to load job")
			return
		}
	}

	if h.archive == nil {
		writeError(w, h.logger, http.StatusNotFound, "Schedule not found")
		return
	}
	run, err := h.archive.LoadSchedule(ctx, id.String())
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Schedule not found")
			return
		}
		h.logger.Error("Failed to load archived schedule", "error", err, "schedule_id", idStr)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load schedule")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ScheduleResponse{ID: run.ID, Status: queue.StatusDone, Records: run.Records})
}
