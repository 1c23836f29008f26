package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Latest when no placement is stored for a key.
var ErrNotFound = errors.New("no stored placement")

// Store persists splitter placements.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the placement store at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// One connection keeps ":memory:" databases shared and writes ordered.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS placements (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session     TEXT NOT NULL,
			layout_key  TEXT NOT NULL,
			axis        TEXT NOT NULL,
			by_fraction INTEGER NOT NULL,
			offset_cells INTEGER NOT NULL,
			fraction    REAL NOT NULL,
			from_user   INTEGER NOT NULL,
			timestamp   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_placements_timestamp ON placements(timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_placements_key ON placements(layout_key);
	`)
	if err != nil {
		return fmt.Errorf("creating placements table: %w", err)
	}
	return nil
}

// Add inserts a placement and returns its ID.
func (s *Store) Add(e Entry) (int64, error) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	result, err := s.db.Exec(`
		INSERT INTO placements (session, layout_key, axis, by_fraction, offset_cells, fraction, from_user, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Session, e.Key, e.Axis, e.ByFraction, e.Offset, e.Fraction, e.FromUser,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting placement: %w", err)
	}
	return result.LastInsertId()
}

// Latest returns the most recent placement for key.
func (s *Store) Latest(key string) (Entry, error) {
	rows, err := s.db.Query(selectEntries+`
		WHERE layout_key = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 1`, key)
	if err != nil {
		return Entry{}, fmt.Errorf("querying latest placement: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("%w for %q", ErrNotFound, key)
	}
	return entries[0], nil
}

// List returns the most recent placements across all keys.
func (s *Store) List(limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(selectEntries+`
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing placements: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns placements whose key contains query.
func (s *Store) Search(query string) ([]Entry, error) {
	rows, err := s.db.Query(selectEntries+`
		WHERE layout_key LIKE ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 50`, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("searching placements: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Clear removes all placements.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM placements")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const selectEntries = `
		SELECT id, session, layout_key, axis, by_fraction, offset_cells, fraction, from_user, timestamp
		FROM placements`

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		err := rows.Scan(&e.ID, &e.Session, &e.Key, &e.Axis, &e.ByFraction,
			&e.Offset, &e.Fraction, &e.FromUser, &ts)
		if err != nil {
			return nil, fmt.Errorf("scanning placement row: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
