// Package storage keeps the stage journal: one row per finished stage,
// in SQLite through the pure-Go modernc.org/sqlite driver.
//
// The CLI opens the journal in memory, so results live for one process only.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// Stage outcomes.
const (
	OutcomeCleared   = "cleared"
	OutcomeDied      = "died"
	OutcomeAbandoned = "abandoned" // the player quit mid-stage
)

// Store manages the SQLite connection of the journal.
type Store struct {
	db *sql.DB
}

// StageResult is one journal row.
type StageResult struct {
	ID        int64
	RunID     string // groups the stages of one play session
	Mode      string // game ID, "snake" or "snake_endless"
	Stage     int    // 1-based
	StageName string
	Outcome   string
	Reason    string // failure reason for died stages
	Length    int
	MaxLength int
	Growth    int
	Poison    int
	Gates     int
	Ticks     int
	Score     int
	CreatedAt time.Time
}

// Stats aggregates the journal rows of one mode.
type Stats struct {
	Mode         string
	Stages       int
	Cleared      int
	Deaths       int
	BestScore    int
	LongestSnake int
	TotalTicks   int64
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
}

// OpenMemory opens an empty in-memory journal. It is gone once the store
// is closed.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS stage_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			stage INTEGER NOT NULL,
			stage_name TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			length INTEGER NOT NULL DEFAULT 0,
			max_length INTEGER NOT NULL DEFAULT 0,
			growth INTEGER NOT NULL DEFAULT 0,
			poison INTEGER NOT NULL DEFAULT 0,
			gates INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_stage_results_run ON stage_results(run_id);
		CREATE INDEX IF NOT EXISTS idx_stage_results_mode ON stage_results(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordStage inserts a stage result and returns its row ID.
func (s *Store) RecordStage(r StageResult) (int64, error) {
	if r.RunID == "" {
		return 0, errors.New("storage: stage result without run id")
	}

	result, err := s.db.Exec(
		`INSERT INTO stage_results
		 (run_id, mode, stage, stage_name, outcome, reason, length, max_length, growth, poison, gates, ticks, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Mode, r.Stage, r.StageName, r.Outcome, r.Reason,
		r.Length, r.MaxLength, r.Growth, r.Poison, r.Gates, r.Ticks, r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record stage: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const selectResults = `SELECT id, run_id, mode, stage, stage_name, outcome, reason,
	length, max_length, growth, poison, gates, ticks, score, created_at
	FROM stage_results`

// Recent returns the latest stage results, newest first.
func (s *Store) Recent(limit int) ([]StageResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(selectResults+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stage results: %w", err)
	}
	return scanResults(rows)
}

// RunResults returns the stage results of one run in the order they were played.
func (s *Store) RunResults(runID string) ([]StageResult, error) {
	rows, err := s.db.Query(selectResults+` WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run %s: %w", runID, err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]StageResult, error) {
	defer rows.Close()

	var results []StageResult
	for rows.Next() {
		var r StageResult
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.RunID, &r.Mode, &r.Stage, &r.StageName, &r.Outcome, &r.Reason,
			&r.Length, &r.MaxLength, &r.Growth, &r.Poison, &r.Gates, &r.Ticks, &r.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats aggregates the results recorded for mode.
func (s *Store) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_length), 0),
		        COALESCE(SUM(ticks), 0)
		 FROM stage_results WHERE mode = ?`,
		OutcomeCleared, OutcomeDied, mode,
	).Scan(&stats.Stages, &stats.Cleared, &stats.Deaths, &stats.BestScore, &stats.LongestSnake, &stats.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}

// DeathReasons counts died stages by failure reason.
func (s *Store) DeathReasons() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT reason, COUNT(*) FROM stage_results WHERE outcome = ? GROUP BY reason`,
		OutcomeDied,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count death reasons: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan reason row: %w", err)
		}
		counts[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}
