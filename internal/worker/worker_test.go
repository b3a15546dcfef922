package worker

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	queuesvc "github.com/jwebster45206/battle-engine/internal/services/queue"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeArchive struct {
	mu   sync.Mutex
	runs map[string]int
	err  error
}

func (a *fakeArchive) SaveSchedule(ctx context.Context, id string, seed int64, records []generator.BattleRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runs == nil {
		a.runs = map[string]int{}
	}
	a.runs[id] = len(records)
	return a.err
}

func setupQueue(t *testing.T) *queuesvc.JobQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := queuesvc.NewClient("redis://"+mr.Addr(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return queuesvc.NewJobQueue(client)
}

func TestWorker_ProcessesScheduleJob(t *testing.T) {
	jobs := setupQueue(t)
	archive := &fakeArchive{}
	gen := generator.New(nil, nil, testLogger())
	w := New(jobs, NewScheduleProcessor(gen, jobs, archive, testLogger()), testLogger(), "w-1")
	ctx := context.Background()

	job, err := jobs.Enqueue(ctx, queue.ScheduleRequest{
		Template: []string{"Romans vs. Samurai", "Mongols vs. Vikings"},
		Days:     3,
		Seed:     12345,
		Config:   generator.DefaultConfig(),
	})
	require.NoError(t, err)

	require.NoError(t, w.processNext())

	done, err := jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusDone, done.Status)
	require.Len(t, done.Records, 3)
	assert.Equal(t, "Mongols vs Vikings", done.Records[1].Matchup)
	assert.Equal(t, 3, archive.runs[job.ID.String()])

	direct, err := gen.BuildSchedule(ctx, job.Schedule.Template, 3, 12345, generator.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, direct[2].Winner, done.Records[2].Winner)
}

func TestWorker_FailedJobIsRecorded(t *testing.T) {
	jobs := setupQueue(t)
	gen := generator.New(nil, nil, testLogger())
	w := New(jobs, NewScheduleProcessor(gen, jobs, nil, testLogger()), testLogger(), "")
	ctx := context.Background()

	job, err := jobs.Enqueue(ctx, queue.ScheduleRequest{Template: []string{"Romans vs. Samurai"}, Days: 0})
	require.NoError(t, err)

	require.NoError(t, w.processNext())

	failed, err := jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusFailed, failed.Status)
	assert.Contains(t, failed.Error, "days")
	assert.Empty(t, failed.Records)
	assert.Contains(t, w.ID(), "worker-")
}

func TestProcessor_ArchiveErrorDoesNotFailJob(t *testing.T) {
	jobs := setupQueue(t)
	archive := &fakeArchive{err: errors.New("disk full")}
	p := NewScheduleProcessor(generator.New(nil, nil, testLogger()), jobs, archive, testLogger())

	job := queue.NewScheduleJob(queue.ScheduleRequest{Template: []string{"Romans vs. Samurai"}, Days: 1, Seed: 1})
	require.NoError(t, p.Process(context.Background(), job))
	assert.Equal(t, queue.StatusDone, job.Status)
}

func TestProcessor_UnsupportedType(t *testing.T) {
	jobs := setupQueue(t)
	p := NewScheduleProcessor(generator.New(nil, nil, testLogger()), jobs, nil, testLogger())

	job := queue.NewScheduleJob(queue.ScheduleRequest{})
	job.Type = "render"
	require.NoError(t, p.Process(context.Background(), job))
	assert.Equal(t, queue.StatusFailed, job.Status)
}

type idleSource struct{}

func (idleSource) BlockingDequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error) {
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Millisecond):
	}
	return nil, nil
}

func TestWorker_StartStop(t *testing.T) {
	w := New(idleSource{}, nil, testLogger(), "idle")

	done := make(chan error, 1)
	go func() { done <- w.Start() }()

	time.Sleep(30 * time.Millisecond)
	w.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

type recordingNotifier struct {
	statuses []queue.Status
}

func (n *recordingNotifier) JobChanged(ctx context.Context, job *queue.Job) error {
	n.statuses = append(n.statuses, job.Status)
	return nil
}

func TestProcessor_NotifiesEachTransition(t *testing.T) {
	jobs := setupQueue(t)
	n := &recordingNotifier{}
	p := NewScheduleProcessor(generator.New(nil, nil, testLogger()), jobs, nil, testLogger()).WithNotifier(n)

	job := queue.NewScheduleJob(queue.ScheduleRequest{Template: []string{"Romans vs. Samurai"}, Days: 1, Seed: 1})
	require.NoError(t, p.Process(context.Background(), job))
	assert.Equal(t, []queue.Status{queue.StatusRunning, queue.StatusDone}, n.statuses)
}
