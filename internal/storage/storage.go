// Package storage persists the task list as a single JSON value in a
// sqlite-backed key-value table.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"todoline/internal/list"
)

var (
	// ErrUnavailable means the store could not be opened or written.
	ErrUnavailable = errors.New("task store unavailable")
	// ErrCorrupt means the stored value is not a valid task encoding.
	ErrCorrupt = errors.New("stored task data is corrupt")
)

const tasksKey = "todos"

// Store wraps the database handle. It holds no task state of its own.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: db path is empty", ErrUnavailable)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	name TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Load reads the stored task list. A missing value is seeded with the
// empty-array encoding and returned as an empty slice.
func (s *Store) Load() ([]list.Task, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?;`, tasksKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		if err := s.setValue(tasksKey, "[]"); err != nil {
			return nil, err
		}
		return []list.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var tasks []list.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if tasks == nil {
		tasks = []list.Task{}
	}
	return tasks, nil
}

// Save overwrites the stored value with the full task snapshot. The UPSERT
// runs as one sqlite statement, so a crash never leaves a half-written
// value behind.
func (s *Store) Save(tasks []list.Task) error {
	if tasks == nil {
		tasks = []list.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.setValue(tasksKey, string(data))
}

func (s *Store) setValue(name, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value;`, name, value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
