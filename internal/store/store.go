// Package store keeps a history of scoring runs in a local sqlite
// database. History is optional everywhere: callers attach a Store when
// the user asked for one and treat failures as warnings.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    dataset TEXT NOT NULL,
    output TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    models TEXT NOT NULL,
    duration_ms INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_means (
    run_id TEXT NOT NULL REFERENCES runs(id),
    col TEXT NOT NULL,
    mean REAL NOT NULL,
    PRIMARY KEY (run_id, col)
);
`

// Store is a handle on the run-history database.
type Store struct {
	db *sql.DB
}

// Run is one recorded scoring run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Dataset   string
	Output    string
	Rows      int
	Models    []string
	Duration  time.Duration
}

// Open opens (creating if needed) the history database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts a run and its per-column means in one transaction and
// returns the run ID. A blank ID gets a fresh UUID; a zero CreatedAt gets
// the current time.
func (s *Store) RecordRun(ctx context.Context, run Run, means map[string]float64) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, created_at, dataset, output, row_count, models, duration_ms) VALUES(?,?,?,?,?,?,?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339),
		run.Dataset,
		run.Output,
		run.Rows,
		strings.Join(run.Models, ","),
		run.Duration.Milliseconds(),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	cols := make([]string, 0, len(means))
	for col := range means {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_means(run_id, col, mean) VALUES(?,?,?)`,
			run.ID, col, means[col],
		); err != nil {
			return "", fmt.Errorf("insert mean for %s: %w", col, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns recorded runs, newest first. A non-positive limit
// returns all of them.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, dataset, output, row_count, models, duration_ms
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			createdAt  string
			models     string
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &createdAt, &run.Dataset, &run.Output,
			&run.Rows, &models, &durationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		if models != "" {
			run.Models = strings.Split(models, ",")
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// RunMeans returns the per-column means recorded for a run. An unknown
// run ID yields an empty map.
func (s *Store) RunMeans(ctx context.Context, runID string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT col, mean FROM run_means WHERE run_id = ? ORDER BY col`, runID)
	if err != nil {
		return nil, fmt.Errorf("query means: %w", err)
	}
	defer rows.Close()

	means := make(map[string]float64)
	for rows.Next() {
		var (
			col  string
			mean float64
		)
		if err := rows.Scan(&col, &mean); err != nil {
			return nil, fmt.Errorf("scan mean: %w", err)
		}
		means[col] = mean
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate means: %w", err)
	}
	return means, nil
}
