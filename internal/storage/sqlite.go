// Package storage keeps the history of finished runs in SQLite, through the
// cgo-free modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

const sqliteTime = "2006-01-02 15:04:05"

// schema is applied in order on every Open; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id     TEXT    NOT NULL UNIQUE,
		mode       TEXT    NOT NULL,
		difficulty TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		won        INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC)`,
}

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Run is one finished game: a win or a loss in one mode.
type Run struct {
	ID         int64
	RunID      string // uuid, unique per run
	Mode       string
	Difficulty core.Difficulty
	Score      int
	Won        bool
	CreatedAt  time.Time
}

// Open opens the database at path, creating it and its directory when
// missing. A leading ~ is expanded to the home directory.
func Open(path string) (*Store, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("storage: ping: %w", err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("storage: migrate: %w", err)
		}
	}
	return tx.Commit()
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished run. A RunID is generated when empty.
// The stored run is returned with its ID set.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, mode, difficulty, score, won) VALUES (?, ?, ?, ?, ?)",
		r.RunID, r.Mode, r.Difficulty.String(), r.Score, r.Won,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}

	r.ID, err = result.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return r, nil
}

// TopScores retrieves the top N runs for the given mode, best first.
func (s *Store) TopScores(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, mode, difficulty, score, won, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collectRuns(rows)
}

// RecentRuns retrieves the latest runs across all modes.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, mode, difficulty, score, won, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// RunByID retrieves a run by its run ID. It returns nil if there is none.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, mode, difficulty, score, won, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(mode string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE mode = ?", mode).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes all runs for the given mode.
func (s *Store) ClearScores(mode string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: clear %s: %w", mode, err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for every mode that has been played.
func (s *Store) Stats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), SUM(won), MAX(score), AVG(score), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var (
			ms   ModeStats
			last any
		)
		if err := rows.Scan(&ms.Mode, &ms.Runs, &ms.Wins, &ms.HighScore, &ms.AvgScore, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		ms.LastPlayed = parseTime(last)
		stats[ms.Mode] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read rows: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var difficulty string
	var createdAt any
	if err := sc.Scan(&r.ID, &r.RunID, &r.Mode, &difficulty, &r.Score, &r.Won, &createdAt); err != nil {
		return r, err
	}
	r.Difficulty, _ = core.ParseDifficulty(difficulty)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func collectRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read rows: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
