package archive

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

// SQLiteStore persists captures to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite capture store.
// The path should be a file path (e.g., "./captures.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS captures (
			capture_id TEXT PRIMARY KEY,
			taken_at TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create captures table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS capture_plugins (
			capture_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			name TEXT NOT NULL,
			version INTEGER NOT NULL,
			enabled INTEGER NOT NULL,
			PRIMARY KEY (capture_id, idx)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create capture_plugins table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(c Capture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(`SELECT COUNT(*) FROM captures WHERE capture_id = ?`, c.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check capture: %w", err)
	}
	if exists > 0 {
		return ErrCaptureExists
	}

	if _, err := tx.Exec(`
		INSERT INTO captures (capture_id, taken_at) VALUES (?, ?)
	`, c.ID, c.TakenAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save capture: %w", err)
	}

	for _, p := range c.Plugins {
		if _, err := tx.Exec(`
			INSERT INTO capture_plugins (capture_id, idx, name, version, enabled)
			VALUES (?, ?, ?, ?, ?)
		`, c.ID, p.Index, p.Name, p.Version, p.Enabled); err != nil {
			return fmt.Errorf("save capture entry %d: %w", p.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(id string) (Capture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Capture{}, ErrStoreClosed
	}

	var takenAt string
	err := s.db.QueryRow(`
		SELECT taken_at FROM captures WHERE capture_id = ?
	`, id).Scan(&takenAt)

	if err == sql.ErrNoRows {
		return Capture{}, ErrCaptureNotFound
	}
	if err != nil {
		return Capture{}, fmt.Errorf("load capture: %w", err)
	}

	c := Capture{ID: id}
	c.TakenAt, _ = time.Parse(time.RFC3339Nano, takenAt)

	rows, err := s.db.Query(`
		SELECT idx, name, version, enabled
		FROM capture_plugins
		WHERE capture_id = ?
		ORDER BY idx
	`, id)
	if err != nil {
		return Capture{}, fmt.Errorf("load capture entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v plugreg.PluginView
		if err := rows.Scan(&v.Index, &v.Name, &v.Version, &v.Enabled); err != nil {
			return Capture{}, fmt.Errorf("scan capture entry: %w", err)
		}
		c.Plugins = append(c.Plugins, v)
	}
	if err := rows.Err(); err != nil {
		return Capture{}, fmt.Errorf("iterate capture entries: %w", err)
	}

	return c, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT c.capture_id, c.taken_at, COUNT(p.capture_id)
		FROM captures c
		LEFT JOIN capture_plugins p ON p.capture_id = c.capture_id
		GROUP BY c.capture_id
		ORDER BY c.taken_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list captures: %w", err)
	}
	defer rows.Close()

	infos := []Info{}
	for rows.Next() {
		var info Info
		var takenAt string
		if err := rows.Scan(&info.ID, &takenAt, &info.Count); err != nil {
			return nil, fmt.Errorf("scan capture info: %w", err)
		}
		info.TakenAt, _ = time.Parse(time.RFC3339Nano, takenAt)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate captures: %w", err)
	}

	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM capture_plugins WHERE capture_id = ?`, id); err != nil {
		return fmt.Errorf("delete capture entries: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM captures WHERE capture_id = ?`, id); err != nil {
		return fmt.Errorf("delete capture: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
