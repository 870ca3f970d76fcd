package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	loxerror "github.com/msto63/lox/foundation/core/error"
)

// Entry is one recorded front end run
type Entry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`
	Output      string    `json:"output,omitempty"`
	Success     bool      `json:"success"`
	Diagnostics []string  `json:"diagnostics,omitempty"`
}

// Store persists run history in SQLite
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens or creates the history database at path
func Open(ctx context.Context, path string) (*Store, error) {
	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, storageError(err, "failed to create history directory", "open").
				WithDetail("path", dir)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open history database", "open").
			WithDetail("path", path)
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize history schema", "open").
			WithDetail("path", path)
	}
	return s, nil
}

// initSchema creates the necessary tables
func (s *Store) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		output TEXT,
		success INTEGER NOT NULL,
		diagnostics TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// Record stores a run. Missing IDs and timestamps are filled in.
func (s *Store) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	var diagnosticsJSON []byte
	if len(entry.Diagnostics) > 0 {
		var err error
		if diagnosticsJSON, err = json.Marshal(entry.Diagnostics); err != nil {
			return storageError(err, "failed to encode diagnostics", "record")
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, timestamp, source, output, success, diagnostics)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Timestamp.UTC(), entry.Source, entry.Output, entry.Success, diagnosticsJSON)
	if err != nil {
		return storageError(err, "failed to insert history entry", "record").
			WithDetail("id", entry.ID)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns every entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, timestamp, source, output, success, diagnostics FROM runs ORDER BY timestamp DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to query history", "recent")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var output, diagnosticsJSON sql.NullString

		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Source, &output,
			&entry.Success, &diagnosticsJSON); err != nil {
			return nil, storageError(err, "failed to scan history entry", "recent")
		}

		entry.Output = output.String
		if diagnosticsJSON.Valid && diagnosticsJSON.String != "" {
			if err := json.Unmarshal([]byte(diagnosticsJSON.String), &entry.Diagnostics); err != nil {
				return nil, storageError(err, "failed to decode diagnostics", "recent").
					WithDetail("id", entry.ID)
			}
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read history", "recent")
	}
	return entries, nil
}

// Count returns the number of recorded runs
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, storageError(err, "failed to count history", "count")
	}
	return n, nil
}

// Prune removes runs older than the given age and returns how many were deleted
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, storageError(err, "failed to prune history", "prune")
	}
	return res.RowsAffected()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func storageError(err error, message, operation string) *loxerror.Error {
	return loxerror.Wrap(err, message).
		WithCode(loxerror.CodeStorage).
		WithOperation("history." + operation)
}
