// Package storage persists finished runs in SQLite through the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is the record of one finished (or abandoned) play-through.
type Run struct {
	ID        int64
	Seed      int64
	Score     float64
	GasBonus  float64
	LevelsWon int
	Levels    int
	MaxTier   string
	Attempts  int
	CreatedAt time.Time
}

// DefaultPath is where runs are kept unless the caller chooses another file.
const DefaultPath = "~/.spaceshots/runs.db"

// Open opens the runs database at path, creating the file, its parent
// directories and the schema as needed. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := db.Ping(); err != nil {
		s.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", path, err)
	}
	if err := s.migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, rest), nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		seed       INTEGER NOT NULL,
		score      REAL    NOT NULL,
		gas_bonus  REAL    NOT NULL DEFAULT 0,
		levels_won INTEGER NOT NULL,
		levels     INTEGER NOT NULL,
		max_tier   TEXT    NOT NULL,
		attempts   INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_tier_score ON runs(max_tier, score DESC)`,
}

func (s *Store) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, score, gas_bonus, levels_won, levels, max_tier, attempts)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Score, r.GasBonus, r.LevelsWon, r.Levels, r.MaxTier, r.Attempts,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: run id: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs ordered by score descending. An empty tier
// matches every run; otherwise only runs whose hardest level was that tier.
func (s *Store) TopRuns(tier string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, gas_bonus, levels_won, levels, max_tier, attempts, created_at
		 FROM runs
		 WHERE ? = '' OR max_tier = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		tier, tier, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &r.GasBonus, &r.LevelsWon, &r.Levels, &r.MaxTier, &r.Attempts, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read runs: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score on record, or 0 with no runs.
func (s *Store) HighScore() (float64, error) {
	var score sql.NullFloat64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return score.Float64, nil
}

// Stats aggregates every stored run.
type Stats struct {
	Runs       int
	HighScore  float64
	AvgScore   float64
	LevelsWon  int
	LastPlayed time.Time
}

// GetStats returns aggregate statistics over all runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(levels_won), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.LevelsWon, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes every stored run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime accepts DATETIME as the driver returns it, either decoded or as
// SQLite's text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
