package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/queue"
)

// Runner drives a running battle-engine API
type Runner struct {
	BaseURL      string
	Client       *http.Client
	Timeout      time.Duration
	PollInterval time.Duration
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:      strings.TrimSuffix(baseURL, "/"),
		Client:       &http.Client{Timeout: 60 * time.Second},
		Timeout:      30 * time.Second,
		PollInterval: 250 * time.Millisecond,
	}
}

// Schedule mirrors the API schedule response.
type Schedule struct {
	ID      string                   `json:"id"`
	Status  queue.Status             `json:"status"`
	Records []generator.BattleRecord `json:"records"`
	Error   string                   `json:"error"`
}

// StatusError is a non-2xx reply.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (r *Runner) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// Health returns nil when the API reports healthy.
func (r *Runner) Health(ctx context.Context) error {
	_, err := r.do(ctx, http.MethodGet, "/health", nil)
	return err
}

// Battle builds one record.
func (r *Runner) Battle(ctx context.Context, a, b string, seed int64, index int) (*generator.BattleRecord, error) {
	data, err := r.do(ctx, http.MethodPost, "/v1/battles", map[string]any{"a": a, "b": b, "seed": seed, "index": index})
	if err != nil {
		return nil, err
	}
	var rec generator.BattleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode battle: %w", err)
	}
	return &rec, nil
}

// Schedule requests a schedule, inline or queued.
func (r *Runner) Schedule(ctx context.Context, template []string, days int, seed int64, async bool) (*Schedule, error) {
	data, err := r.do(ctx, http.MethodPost, "/v1/schedules", map[string]any{
		"template": template, "days": days, "seed": seed, "async": async,
	})
	if err != nil {
		return nil, err
	}
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return &s, nil
}

// WaitForJob polls a queued schedule until it finishes or Timeout passes.
func (r *Runner) WaitForJob(ctx context.Context, id string) (*Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()
	for {
		data, err := r.do(ctx, http.MethodGet, "/v1/schedules/"+id, nil)
		if err != nil {
			return nil, err
		}
		var s Schedule
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		if s.Status.Terminal() {
			return &s, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("job %s still %s: %w", id, s.Status, ctx.Err())
		case <-time.After(r.PollInterval):
		}
	}
}

// Export returns the ZIP bundle bytes.
func (r *Runner) Export(ctx context.Context, template []string, days int, seed int64) ([]byte, error) {
	return r.do(ctx, http.MethodPost, "/v1/exports", map[string]any{"template": template, "days": days, "seed": seed})
}
