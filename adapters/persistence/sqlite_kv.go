package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// modernc.org/sqlite applies _pragma parameters on every new connection.
const sqlitePragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_documents (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// SQLiteKVStore is the embedded, single-file store. It plays the part a
// browser's local storage plays for a single-page app: durable, local to one
// installation, no server required.
type SQLiteKVStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteKVStore opens (or creates) the database file at path.
func NewSQLiteKVStore(path string, log logger.Logger) (*SQLiteKVStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// one writer per process; other processes on the same file wait out
	// busy_timeout instead of failing with SQLITE_BUSY
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &SQLiteKVStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info("Open SQLite store successfully.")
	return s, nil
}

// OpenMemorySQLiteKVStore creates an in-memory SQLite store (useful for testing).
func OpenMemorySQLiteKVStore() (*SQLiteKVStore, error) {
	db, err := sql.Open("sqlite", ":memory:?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	s := &SQLiteKVStore{db: db, path: ":memory:"}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *SQLiteKVStore) migrate() error {
	_, err := s.db.Exec(sqliteSchema)
	return err
}

func (s *SQLiteKVStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteKVStore) Load(ctx context.Context, key string) (kvstore.LoadResult, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_documents WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return kvstore.Empty(), nil
	}
	if err != nil {
		return kvstore.LoadResult{}, fmt.Errorf("loading document %s: %w", key, err)
	}
	return kvstore.Classify(value), nil
}

func (s *SQLiteKVStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting document %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv_documents ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning document key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
