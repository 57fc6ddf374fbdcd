package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run represents one recorded pipeline invocation.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	URL          string
	Engine       string
	Language     string
	Status       string
	ErrorType    string
	ErrorMessage string
	WordCount    int
	Summary      string
	OutputPath   string
	DurationMS   int64
}

// InsertRun records a completed (or failed) run and returns its id.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (url, engine, language, status, error_type, error_message,
		                  word_count, summary, output_path, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.URL, run.Engine, run.Language, run.Status, run.ErrorType, run.ErrorMessage,
		run.WordCount, run.Summary, run.OutputPath, run.DurationMS)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, url, engine, language, status,
		       error_type, error_message, word_count, output_path, duration_ms
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.URL, &r.Engine, &r.Language,
			&r.Status, &r.ErrorType, &r.ErrorMessage, &r.WordCount,
			&r.OutputPath, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunByID returns one run including its stored summary.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, url, engine, language, status,
		       error_type, error_message, word_count, summary, output_path, duration_ms
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.URL, &r.Engine, &r.Language,
		&r.Status, &r.ErrorType, &r.ErrorMessage, &r.WordCount,
		&r.Summary, &r.OutputPath, &r.DurationMS)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// LatestRunID returns the id of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errors.New("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}
