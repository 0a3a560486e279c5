// Package storage provides SQLite-based persistence for finished session summaries.
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

	"github.com/vovakirdan/match3/internal/session"
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

var _ session.SummarySaver = (*Store)(nil)

// SessionRecord is one stored session summary.
type SessionRecord struct {
	ID           string
	Preset       string
	Supplier     string
	Seed         int64
	Width        int
	Height       int
	Moves        int
	Matches      int
	Refills      int
	TilesCleared int
	MaxCascade   int
	Deadlocked   bool
	Duration     time.Duration // Stored with millisecond precision
	CreatedAt    time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Sessions     int
	TotalMoves   int
	TilesCleared int
	BestCascade  int
	Deadlocked   int
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
			id TEXT PRIMARY KEY,
			preset TEXT NOT NULL DEFAULT '',
			supplier TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			matches INTEGER NOT NULL DEFAULT 0,
			refills INTEGER NOT NULL DEFAULT 0,
			tiles_cleared INTEGER NOT NULL DEFAULT 0,
			max_cascade INTEGER NOT NULL DEFAULT 0,
			deadlocked INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_preset ON sessions(preset, tiles_cleared DESC);
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

// SaveSession records a finished session.
func (s *Store) SaveSession(rec SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, preset, supplier, seed, width, height, moves, matches, refills,
		  tiles_cleared, max_cascade, deadlocked, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Preset,
		rec.Supplier,
		rec.Seed,
		rec.Width,
		rec.Height,
		rec.Moves,
		rec.Matches,
		rec.Refills,
		rec.TilesCleared,
		rec.MaxCascade,
		rec.Deadlocked,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// SaveSummary implements session.SummarySaver.
func (s *Store) SaveSummary(sum session.Summary) error {
	return s.SaveSession(SessionRecord{
		ID:           sum.ID,
		Preset:       sum.Preset,
		Supplier:     sum.Supplier,
		Seed:         sum.Seed,
		Width:        sum.Width,
		Height:       sum.Height,
		Moves:        sum.Moves,
		Matches:      sum.Matches,
		Refills:      sum.Refills,
		TilesCleared: sum.TilesCleared,
		MaxCascade:   sum.MaxCascade,
		Deadlocked:   sum.Deadlocked,
		Duration:     sum.Duration,
	})
}

const sessionColumns = `id, preset, supplier, seed, width, height, moves, matches, refills,
	tiles_cleared, max_cascade, deadlocked, duration_ms, created_at`

// SessionByID retrieves a session by its ID.
// Returns nil without an error when no such session exists.
func (s *Store) SessionByID(id string) (*SessionRecord, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// BestSessions retrieves the sessions of a preset that cleared the most tiles.
func (s *Store) BestSessions(preset string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE preset = ?
		 ORDER BY tiles_cleared DESC, rowid ASC
		 LIMIT ?`,
		preset, limit,
	)
}

// Stats returns aggregate figures over all stored sessions.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(moves), 0),
		        COALESCE(SUM(tiles_cleared), 0),
		        COALESCE(MAX(max_cascade), 0),
		        COALESCE(SUM(deadlocked), 0)
		 FROM sessions`,
	).Scan(&st.Sessions, &st.TotalMoves, &st.TilesCleared, &st.BestCascade, &st.Deadlocked)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearSessions deletes all stored sessions.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionRecord, error) {
	var rec SessionRecord
	var durationMs int64
	var createdAt any

	err := sc.Scan(
		&rec.ID,
		&rec.Preset,
		&rec.Supplier,
		&rec.Seed,
		&rec.Width,
		&rec.Height,
		&rec.Moves,
		&rec.Matches,
		&rec.Refills,
		&rec.TilesCleared,
		&rec.MaxCascade,
		&rec.Deadlocked,
		&durationMs,
		&createdAt,
	)
	if err != nil {
		return SessionRecord{}, err
	}
	rec.Duration = time.Duration(durationMs) * time.Millisecond

	// The driver returns DATETIME either parsed or as text
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}
