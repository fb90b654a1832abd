package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/injazapp/injaz/internal/logger"
)

const sqliteSchemaVersion = 1

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);
`

// SQLiteKV is a keyed record store backed by a single-table SQLite database.
type SQLiteKV struct {
	path string
	db   *sql.DB
}

func NewSQLiteKV(path string) *SQLiteKV {
	return &SQLiteKV{path: path}
}

func (s *SQLiteKV) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.migrate(); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	return nil
}

func (s *SQLiteKV) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'injaz init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateVersion()
}

func (s *SQLiteKV) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteKV) migrate() error {
	// Enable WAL mode for cheaper repeated small writes.
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return err
	}
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return err
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_info LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec("INSERT INTO schema_info (version) VALUES (?)", sqliteSchemaVersion)
		return err
	}
	return err
}

func (s *SQLiteKV) validateVersion() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_info LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > sqliteSchemaVersion {
		return fmt.Errorf("storage was created by a newer injaz version (schema %d, supported %d)", version, sqliteSchemaVersion)
	}
	return nil
}

func (s *SQLiteKV) Read(key string, out any) (bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		logger.Warn("corrupt stored record, falling back to default", "key", key, "error", err)
		return false, nil
	}

	return true, nil
}

func (s *SQLiteKV) Write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}

	_, err = s.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, string(raw))
	return err
}

func (s *SQLiteKV) List() (map[string]json.RawMessage, error) {
	rows, err := s.db.Query("SELECT key, value FROM kv")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = json.RawMessage(value)
	}

	return out, rows.Err()
}

func (s *SQLiteKV) Replace(data map[string]json.RawMessage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM kv"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO kv (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range data {
		if _, err := stmt.Exec(key, string(value)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteKV) Wipe() error {
	_, err := s.db.Exec("DELETE FROM kv")
	return err
}

func (s *SQLiteKV) Path() string {
	return s.path
}
