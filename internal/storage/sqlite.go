// Package storage provides SQLite-based persistence for match session
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The simulation itself never touches storage; sessions are
// recorded by the platform layer when a play session ends.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionResult records one play session: the final score on each side and
// how long the session lasted.
type SessionResult struct {
	ID           int64
	LeftScore    int
	RightScore   int
	DurationSecs int
	Remote       bool // played over SSH
	CreatedAt    time.Time
}

// SessionStats contains aggregated statistics over all recorded sessions.
type SessionStats struct {
	Sessions   int
	LeftWins   int
	RightWins  int
	Draws      int
	TotalGoals int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			remote INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession records a finished play session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(result SessionResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (left_score, right_score, duration_secs, remote)
		 VALUES (?, ?, ?, ?)`,
		result.LeftScore, result.RightScore, result.DurationSecs, result.Remote,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, left_score, right_score, duration_secs, remote, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LeftScore, &r.RightScore, &r.DurationSecs, &r.Remote, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats returns aggregated statistics over all recorded sessions.
func (s *Store) Stats() (SessionStats, error) {
	var stats SessionStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(left_score > right_score), 0),
		        COALESCE(SUM(right_score > left_score), 0),
		        COALESCE(SUM(left_score = right_score), 0),
		        COALESCE(SUM(left_score + right_score), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.LeftWins, &stats.RightWins, &stats.Draws, &stats.TotalGoals)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	return stats, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values coming back from
// the driver for DATETIME columns.
func parseTimestamp(v any) time.Time {
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
