package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DurableStore keeps auth state in a local sqlite file so a remembered
// session survives process restarts.
type DurableStore struct {
	db *sql.DB
}

func NewDurableStore(path string) (*DurableStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS auth_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create auth_state table: %w", err)
	}

	return &DurableStore{db: db}, nil
}

// DefaultStatePath returns the per-user location of the state database,
// e.g. ~/.config/pm_client/state.db on Linux.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "pm_client", "state.db"), nil
}

func (s *DurableStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM auth_state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

func (s *DurableStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO auth_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *DurableStore) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM auth_state WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *DurableStore) Close() error {
	return s.db.Close()
}
