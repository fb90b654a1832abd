package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/injazapp/injaz/internal/logger"
)

// PostgresKV is a keyed record store backed by a single kv table in
// PostgreSQL, for users who keep one tracker across machines. The connection
// string is held in the OS keyring, never in a config file.
type PostgresKV struct {
	connStr string
	db      *sql.DB
}

func NewPostgresKV(connStr string) *PostgresKV {
	return &PostgresKV{connStr: connStr}
}

func (s *PostgresKV) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresKV) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS injaz_kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	return nil
}

func (s *PostgresKV) Load() error {
	if err := s.open(); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'injaz_kv')").Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("storage not initialized, run 'injaz init' first")
	}

	return nil
}

func (s *PostgresKV) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresKV) Read(key string, out any) (bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM injaz_kv WHERE key = $1", key).Scan(&value)
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

func (s *PostgresKV) Write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO injaz_kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, string(raw))
	return err
}

func (s *PostgresKV) List() (map[string]json.RawMessage, error) {
	rows, err := s.db.Query("SELECT key, value FROM injaz_kv")
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

func (s *PostgresKV) Replace(data map[string]json.RawMessage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM injaz_kv"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO injaz_kv (key, value) VALUES ($1, $2)")
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

func (s *PostgresKV) Wipe() error {
	_, err := s.db.Exec("DELETE FROM injaz_kv")
	return err
}

func (s *PostgresKV) Path() string {
	return "postgres"
}
