// Package storage provides SQLite-based persistence for the drawing
// gallery: named programs kept alongside their dimensions and command
// counts. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hexdraw/internal/drawing"
)

// Store manages the SQLite database connection for the gallery.
type Store struct {
	db *sql.DB
}

// Entry is one saved drawing's metadata.
type Entry struct {
	ID           int64
	Name         string
	Height       int
	Width        int
	CommandCount int
	CreatedAt    time.Time
}

// Stats aggregates the gallery contents.
type Stats struct {
	Drawings      int
	TotalCommands int64
	TotalCells    int64
}

// Open creates or opens a gallery database at the given path.
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
		CREATE TABLE IF NOT EXISTS drawings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			height INTEGER NOT NULL,
			width INTEGER NOT NULL,
			program TEXT NOT NULL,
			command_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_drawings_name ON drawings(name);
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

// Save stores a drawing under a name, replacing any previous drawing with
// the same name. Returns the ID of the record.
func (s *Store) Save(name string, d *drawing.Drawing) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("storage: drawing name must not be empty")
	}

	result, err := s.db.Exec(
		`INSERT INTO drawings (name, height, width, program, command_count)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   height = excluded.height,
		   width = excluded.width,
		   program = excluded.program,
		   command_count = excluded.command_count,
		   created_at = CURRENT_TIMESTAMP`,
		name, d.Height, d.Width, d.String(), len(d.Commands),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save drawing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Get retrieves a drawing by name, re-parsed from its stored program
// text. Returns nil without error if the name is unknown.
func (s *Store) Get(name string) (*drawing.Drawing, error) {
	var program string
	err := s.db.QueryRow(
		"SELECT program FROM drawings WHERE name = ?",
		name,
	).Scan(&program)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query drawing: %w", err)
	}

	d, err := drawing.Parse(program)
	if err != nil {
		return nil, fmt.Errorf("storage: stored program for %q is corrupt: %w", name, err)
	}
	return d, nil
}

// List retrieves all saved drawings, newest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, height, width, command_count, created_at
		 FROM drawings
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query drawings: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Height, &e.Width, &e.CommandCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Delete removes a drawing by name. Returns whether anything was removed.
func (s *Store) Delete(name string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM drawings WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete drawing: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// GalleryStats aggregates counts over the whole gallery.
func (s *Store) GalleryStats() (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(command_count), 0), COALESCE(SUM(height * width), 0)
		 FROM drawings`,
	).Scan(&stats.Drawings, &stats.TotalCommands, &stats.TotalCells)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get gallery stats: %w", err)
	}
	return stats, nil
}

// parseTime handles the driver returning either time.Time or its string form.
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
