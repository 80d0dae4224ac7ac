package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nathanbeddoewebdev/pkgsort/internal/database"
)

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Repository defines the persistence interface for history entries.
type Repository interface {
	Save(entry *Entry) error
	List(limit int) ([]Entry, error)
	ListByPath(path string, limit int) ([]Entry, error)
	Latest(path string) (*Entry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the history repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	db.SetMaxOpenConns(1)

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS sort_history (
            id           INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp    TEXT    NOT NULL,
            path         TEXT    NOT NULL,
            outcome      TEXT    NOT NULL DEFAULT '',
            content_hash TEXT    NOT NULL DEFAULT '',
            detail       TEXT    NOT NULL DEFAULT '',
            duration_ms  INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_sort_history_timestamp ON sort_history(timestamp);
        CREATE INDEX IF NOT EXISTS idx_sort_history_path ON sort_history(path, timestamp);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("history: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new history entry.
func (r *SQLiteRepository) Save(entry *Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO sort_history (timestamp, path, outcome, content_hash, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(timeLayout), entry.Path, entry.Outcome,
		entry.ContentHash, entry.Detail, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("history: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("history: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent n entries.
func (r *SQLiteRepository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, path, outcome, content_hash, detail, duration_ms
        FROM sort_history ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListByPath returns the most recent n entries for a manifest path.
func (r *SQLiteRepository) ListByPath(path string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, path, outcome, content_hash, detail, duration_ms
        FROM sort_history WHERE path = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, path, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Latest returns the most recent entry for path, or nil if there is none.
func (r *SQLiteRepository) Latest(path string) (*Entry, error) {
	entries, err := r.ListByPath(path, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(timeLayout)
	result, err := r.db.Exec(`DELETE FROM sort_history WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Path, &entry.Outcome,
			&entry.ContentHash, &entry.Detail, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("history: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(timeLayout, timestampStr)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return entries, nil
}
