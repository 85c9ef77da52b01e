package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	_ "modernc.org/sqlite"
)

const (
	driverName  = "sqlite"
	maxAttempts = 5
)

const schema = `
CREATE TABLE IF NOT EXISTS prefs (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_utc TEXT NOT NULL
)`

// SQLiteStore persists values in a single-table sqlite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("prefs path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("prefs path %q is a directory, expected file", cleanPath)
	}
	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create prefs directory %q: %w", dir, err)
		}
	}

	// Two popups can overlap briefly; busy_timeout + WAL keep the second
	// writer from failing outright.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", cleanPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite prefs %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite prefs %q: %w", cleanPath, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sqlite schema %q: %w", cleanPath, err)
	}
	events.Prefs.Open(string(KindSQLite), cleanPath)
	return &SQLiteStore{path: cleanPath, db: db}, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Read(key string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err = s.withRetry("read", func() error {
		return s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		events.Prefs.Read(string(KindSQLite), key, false)
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read pref %q: %w", key, err)
	}
	events.Prefs.Read(string(KindSQLite), key, true)
	return value, nil
}

func (s *SQLiteStore) Write(key, value string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
INSERT INTO prefs (key, value, updated_utc) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_utc=excluded.updated_utc
`
	err = s.withRetry("write", func() error {
		_, err := s.db.Exec(query, key, value, time.Now().UTC().Format(time.RFC3339Nano))
		return err
	})
	if err != nil {
		return fmt.Errorf("write pref %q: %w", key, err)
	}
	events.Prefs.Write(string(KindSQLite), key, len(value))
	return nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) withRetry(op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
		events.Prefs.Retry(string(KindSQLite), op, attempt, err)
		time.Sleep(time.Duration(attempt*25) * time.Millisecond)
	}
	return err
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}
