package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/tournament"
)

// ErrRunNotFound is returned when no archived run has the requested id.
var ErrRunNotFound = errors.New("archived run not found")

// Archive keeps generated schedules and tournament runs in SQLite. It is an
// export log, not a source of truth: every row can be rebuilt from its seed.
type Archive struct {
	conn *sqlx.DB
}

// ScheduleRun is one archived schedule.
type ScheduleRun struct {
	ID        string                   `db:"id" json:"id"`
	CreatedAt time.Time                `db:"created_at" json:"created_at"`
	Seed      int64                    `db:"seed" json:"seed"`
	Days      int                      `db:"days" json:"days"`
	Records   []generator.BattleRecord `db:"-" json:"records,omitempty"`
}

// TournamentRun is one archived round robin.
type TournamentRun struct {
	ID        string            `db:"id" json:"id"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	Seed      int64             `db:"seed" json:"seed"`
	Result    tournament.Result `db:"-" json:"result"`
}

// OpenArchive opens or creates a SQLite archive at path.
func OpenArchive(path string) (*Archive, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	a := &Archive{conn: conn}
	if err := a.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return a, nil
}

func (a *Archive) Close() error {
	return a.conn.Close()
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schedules (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		seed INTEGER NOT NULL,
		days INTEGER NOT NULL,
		records_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tournaments (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		seed INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_schedules_created ON schedules(created_at);
	`
	_, err := a.conn.Exec(schema)
	return err
}

// SaveSchedule archives records under id, replacing any earlier run with
// the same id.
func (a *Archive) SaveSchedule(ctx context.Context, id string, seed int64, records []generator.BattleRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	_, err = a.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO schedules (id, created_at, seed, days, records_json) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), seed, len(records), string(data))
	if err != nil {
		return fmt.Errorf("save schedule %s: %w", id, err)
	}
	return nil
}

type scheduleRow struct {
	ScheduleRun
	RecordsJSON string `db:"records_json"`
}

// LoadSchedule returns an archived schedule with its records.
func (a *Archive) LoadSchedule(ctx context.Context, id string) (*ScheduleRun, error) {
	var row scheduleRow
	err := a.conn.GetContext(ctx, &row,
		`SELECT id, created_at, seed, days, records_json FROM schedules WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("schedule %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load schedule %s: %w", id, err)
	}
	run := row.ScheduleRun
	if err := json.Unmarshal([]byte(row.RecordsJSON), &run.Records); err != nil {
		return nil, fmt.Errorf("decode schedule %s: %w", id, err)
	}
	return &run, nil
}

// ListSchedules returns archived schedule headers, newest first.
func (a *Archive) ListSchedules(ctx context.Context, limit int) ([]ScheduleRun, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []ScheduleRun
	err := a.conn.SelectContext(ctx, &runs,
		`SELECT id, created_at, seed, days FROM schedules ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return runs, nil
}

// SaveTournament archives a round-robin result.
func (a *Archive) SaveTournament(ctx context.Context, id string, seed int64, result tournament.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal tournament: %w", err)
	}
	_, err = a.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO tournaments (id, created_at, seed, result_json) VALUES (?, ?, ?, ?)`,
		id, time.Now().UTC(), seed, string(data))
	if err != nil {
		return fmt.Errorf("save tournament %s: %w", id, err)
	}
	return nil
}

type tournamentRow struct {
	TournamentRun
	ResultJSON string `db:"result_json"`
}

// LoadTournament returns an archived round-robin result.
func (a *Archive) LoadTournament(ctx context.Context, id string) (*TournamentRun, error) {
	var row tournamentRow
	err := a.conn.GetContext(ctx, &row,
		`SELECT id, created_at, seed, result_json FROM tournaments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tournament %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load tournament %s: %w", id, err)
	}
	run := row.TournamentRun
	if err := json.Unmarshal([]byte(row.ResultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("decode tournament %s: %w", id, err)
	}
	return &run, nil
}
