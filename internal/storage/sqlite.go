// Package storage provides SQLite-based key/value persistence for game state.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPrefix namespaces keys written by the application.
const DefaultPrefix = "auto-game:"

// Store is a key/value store backed by a SQLite database.
// Every key is stored under the store's prefix, so several stores with
// different prefixes can share one database file.
type Store struct {
	db     *sql.DB
	prefix string
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The path ":memory:" opens a private in-memory database.
func Open(dbPath, prefix string) (*Store, error) {
	if dbPath != ":memory:" {
		// Expand ~ to home directory
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		// Create parent directories
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// An in-memory database lives only as long as its connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, prefix: prefix}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// Prefix returns the key prefix of this store.
func (s *Store) Prefix() string {
	return s.prefix
}

// Get decodes the JSON value stored under key into dest.
// It reports false if the key is missing or its value does not decode into
// dest; neither case is an error.
func (s *Store) Get(key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRow(
		"SELECT value FROM kv WHERE key = ?",
		s.prefix+key,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set stores value under key as JSON, replacing any previous value.
func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %q: %w", key, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.prefix+key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", s.prefix+key)
	if err != nil {
		return fmt.Errorf("storage: cannot remove %q: %w", key, err)
	}
	return nil
}

// Clear deletes every key under this store's prefix.
// Keys written with other prefixes are left alone.
func (s *Store) Clear() error {
	keys, err := s.rawKeys()
	if err != nil {
		return err
	}

	for _, k := range keys {
		if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", k); err != nil {
			return fmt.Errorf("storage: cannot clear: %w", err)
		}
	}
	return nil
}

// Keys returns the keys under this store's prefix, without the prefix, sorted.
func (s *Store) Keys() ([]string, error) {
	raw, err := s.rawKeys()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = strings.TrimPrefix(k, s.prefix)
	}
	return keys, nil
}

// rawKeys lists full keys that start with the prefix.
// The match is done in Go so prefixes may contain LIKE wildcards.
func (s *Store) rawKeys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if strings.HasPrefix(k, s.prefix) {
			keys = append(keys, k)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return keys, nil
}

// UpdatedAt returns when key was last written.
// The boolean is false if the key does not exist.
func (s *Store) UpdatedAt(key string) (time.Time, bool, error) {
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT updated_at FROM kv WHERE key = ?",
		s.prefix+key,
	).Scan(&updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		return v, true, nil
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed, true, nil
		}
	}
	return time.Time{}, true, nil
}
