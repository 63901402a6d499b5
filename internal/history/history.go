// Package history persists generation run records in SQLite so past runs
// can be inspected with the history command.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded generation run.
type Run struct {
	ID           string
	Project      string
	StartedAt    time.Time
	Duration     time.Duration
	FilesScanned int
	Blocks       int
	Entities     int
	Outputs      int
	Warnings     int
	Failures     int
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (and initializes) the history database.
// Use ":memory:" for an in-memory database.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		project TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		files_scanned INTEGER NOT NULL,
		blocks INTEGER NOT NULL,
		entities INTEGER NOT NULL,
		outputs INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		failures INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_warnings (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		message TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_run_warnings_run ON run_warnings(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun appends a run together with its warning lines.
func (s *Store) RecordRun(ctx context.Context, run Run, warnings []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, project, started_at, duration_ms, files_scanned, blocks, entities, outputs, warnings, failures)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Project, run.StartedAt.Unix(), run.Duration.Milliseconds(),
		run.FilesScanned, run.Blocks, run.Entities, run.Outputs, run.Warnings, run.Failures,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, msg := range warnings {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO run_warnings (run_id, seq, message) VALUES (?, ?, ?)",
			run.ID, i, msg,
		); err != nil {
			return fmt.Errorf("insert run warning: %w", err)
		}
	}

	return tx.Commit()
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, started_at, duration_ms, files_scanned, blocks, entities, outputs, warnings, failures
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var started int64
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.Project, &started, &durationMS,
			&r.FilesScanned, &r.Blocks, &r.Entities, &r.Outputs, &r.Warnings, &r.Failures); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.Unix(started, 0)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunWarnings returns the warning lines recorded for a run, in order.
func (s *Store) RunWarnings(ctx context.Context, runID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT message FROM run_warnings WHERE run_id = ? ORDER BY seq", runID)
	if err != nil {
		return nil, fmt.Errorf("query run warnings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var msgs []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scan run warning: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
