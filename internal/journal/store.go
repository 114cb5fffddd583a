// Package journal keeps a local SQLite log of files written by the exporter.
// Only export metadata is stored; fetched records never touch disk.
package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/adrg/xdg"
	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/logging"
)

// retention is how long journal entries are kept
const retention = 90 * 24 * time.Hour

// Entry is a single journaled export
type Entry struct {
	ID         int64
	Path       string
	Format     string
	Rows       int
	Fallback   bool
	ExportedAt time.Time
}

// Store manages export journal persistence
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens the journal under the XDG data directory
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("registros/exports.db")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve journal path")
	}
	return Open(dbPath)
}

// Open opens (creating if needed) the journal database at dsn
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open journal", goerr.V("dsn", dsn))
	}
	// A single connection keeps ":memory:" databases consistent
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, goerr.Wrap(err, "failed to configure journal")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS exports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			format TEXT NOT NULL,
			row_count INTEGER NOT NULL,
			fallback INTEGER NOT NULL DEFAULT 0,
			exported_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_exports_exported_at ON exports(exported_at);
	`)
	if err != nil {
		db.Close()
		return nil, goerr.Wrap(err, "failed to create journal schema")
	}

	store := &Store{db: db, now: time.Now}
	store.prune()
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Record implements export.Recorder
func (s *Store) Record(ctx context.Context, res export.Result) error {
	if !res.Written {
		return nil
	}
	at := res.At
	if at.IsZero() {
		at = s.now()
	}
	_, err := s.Add(ctx, &Entry{
		Path:       res.Path,
		Format:     res.Format,
		Rows:       res.Rows,
		Fallback:   res.Fallback,
		ExportedAt: at,
	})
	return err
}

// Add inserts a new entry and sets its ID
func (s *Store) Add(ctx context.Context, e *Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (path, format, row_count, fallback, exported_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.Path, e.Format, e.Rows, e.Fallback, e.ExportedAt.UTC())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to insert journal entry", goerr.V("path", e.Path))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read journal id")
	}
	e.ID = id
	return id, nil
}

// List returns the most recent entries first
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, path, format, row_count, fallback, exported_at
		FROM exports
		ORDER BY exported_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list journal")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Latest returns the most recent entry, or nil when the journal is empty
func (s *Store) Latest(ctx context.Context) (*Entry, error) {
	entries, err := s.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Count returns the number of journaled exports
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exports`).Scan(&count)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count journal")
	}
	return count, nil
}

// scanEntries scans rows into an Entry slice
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.Format, &e.Rows, &e.Fallback, &e.ExportedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan journal entry")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// cleanup removes entries past the retention window
// prune drops expired entries. Stale rows are harmless, so a failure is
// only logged.
func (s *Store) prune() {
	if err := s.cleanup(); err != nil {
		logging.Default().Warn("journal cleanup failed", "error", err)
	}
}

func (s *Store) cleanup() error {
	_, err := s.db.Exec(`DELETE FROM exports WHERE exported_at < ?`, s.now().Add(-retention).UTC())
	return err
}
