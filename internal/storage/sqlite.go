// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrDuplicateResult is returned when a deal already has a stored result.
var ErrDuplicateResult = errors.New("storage: result for deal already saved")

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished or abandoned deal.
type Result struct {
	ID        int64
	DealID    string
	GameID    string
	Layout    string
	Seconds   int
	Moves     int
	Won       bool
	CreatedAt time.Time
}

// LayoutStats contains aggregated statistics for one layout.
type LayoutStats struct {
	Layout      string
	Played      int
	Won         int
	BestSeconds int     // Fastest win; 0 if never won
	AvgSeconds  float64 // Mean time over wins
	LastPlayed  time.Time
}

// WinRate returns the fraction of played deals that were cleared.
func (s LayoutStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deal_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			layout TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_layout ON results(layout);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(layout, won, seconds, moves);
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

// SaveResult records the outcome of a deal.
// Returns the ID of the inserted record, or ErrDuplicateResult if the deal
// was already saved.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.DealID == "" {
		return 0, fmt.Errorf("storage: result has no deal id")
	}

	res, err := s.db.Exec(
		`INSERT INTO results (deal_id, game_id, layout, seconds, moves, won)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(deal_id) DO NOTHING`,
		r.DealID, r.GameID, r.Layout, r.Seconds, r.Moves, r.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot check inserted rows: %w", err)
	}
	if n == 0 {
		return 0, ErrDuplicateResult
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, deal_id, game_id, layout, seconds, moves, won, created_at`

// BestResults returns the fastest wins, ties broken by fewer moves.
// An empty layout returns wins across all layouts.
func (s *Store) BestResults(layout string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE won = 1 AND (? = '' OR layout = ?)
		 ORDER BY seconds ASC, moves ASC, id ASC
		 LIMIT ?`,
		layout, layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults returns the latest results of any outcome, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

// ClearResults deletes all results for the given layout.
// An empty layout deletes every result.
func (s *Store) ClearResults(layout string) error {
	var err error
	if layout == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE layout = ?", layout)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// LayoutStats retrieves aggregated statistics for a specific layout.
func (s *Store) LayoutStats(layout string) (*LayoutStats, error) {
	all, err := s.queryStats(`WHERE layout = ?`, layout)
	if err != nil {
		return nil, err
	}
	if st, ok := all[layout]; ok {
		return st, nil
	}
	return &LayoutStats{Layout: layout}, nil
}

// AllStats retrieves statistics for every layout that has been played.
func (s *Store) AllStats() (map[string]*LayoutStats, error) {
	return s.queryStats("")
}

func (s *Store) queryStats(where string, args ...any) (map[string]*LayoutStats, error) {
	rows, err := s.db.Query(
		`SELECT layout,
		        COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN seconds END), 0),
		        COALESCE(AVG(CASE WHEN won = 1 THEN seconds END), 0),
		        MAX(created_at)
		 FROM results `+where+`
		 GROUP BY layout`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get layout stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LayoutStats)
	for rows.Next() {
		var st LayoutStats
		var lastPlayed any
		if err := rows.Scan(&st.Layout, &st.Played, &st.Won, &st.BestSeconds, &st.AvgSeconds, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Layout] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.DealID, &r.GameID, &r.Layout, &r.Seconds, &r.Moves, &r.Won, &createdAt); err != nil {
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

// parseTime handles both driver-decoded times and raw SQLite timestamps.
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
