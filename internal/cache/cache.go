// Package cache persists ISE response bodies in a local SQLite file so
// repeated invocations can skip the network.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DefaultTTL is how long a stored body stays fresh.
const DefaultTTL = time.Hour

const privateDirPerm = 0o700

// Store is a URL-keyed response cache backed by SQLite.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
	mu  sync.Mutex
}

// DefaultPath returns the cache file location: $ISE_CACHE_DIR/cache.db if
// set, else <user cache dir>/ise-go/cache.db.
func DefaultPath() (string, error) {
	if dir := os.Getenv("ISE_CACHE_DIR"); dir != "" {
		return filepath.Join(dir, "cache.db"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate user cache dir: %w", err)
	}
	return filepath.Join(dir, "ise-go", "cache.db"), nil
}

// Open opens (or creates) the cache database at path. When force is set
// every stored entry is discarded first.
func Open(path string, ttl time.Duration, force bool) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(filepath.Dir(path), privateDirPerm); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	dsn := path + "?" + url.Values{
		"_pragma": []string{
			"busy_timeout(30000)",
			"journal_mode(WAL)",
			"synchronous(NORMAL)",
		},
	}.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, ttl: ttl, now: time.Now}
	if err := s.initSchema(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, errors.Join(err, fmt.Errorf("close cache db after schema init failure: %w", closeErr))
		}
		return nil, err
	}
	if force {
		if err := s.Clear(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		stored_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_stored_at ON responses(stored_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init cache schema: %w", err)
	}
	return nil
}

// Get returns the body stored under key if it is younger than the TTL.
// Expired rows are removed on the way out.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		body     []byte
		storedAt int64
	)
	err := s.db.QueryRow(`SELECT body, stored_at FROM responses WHERE key = ?`, key).Scan(&body, &storedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("key", key).Msg("cache lookup failed")
		}
		return nil, false
	}
	if s.now().Sub(time.UnixMilli(storedAt)) >= s.ttl {
		if _, err := s.db.Exec(`DELETE FROM responses WHERE key = ?`, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache expire failed")
		}
		return nil, false
	}
	return body, true
}

// Put stores body under key, replacing any previous entry.
func (s *Store) Put(key string, body []byte) error {
	if key == "" {
		return fmt.Errorf("cache key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO responses (key, body, stored_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, stored_at = excluded.stored_at`,
		key, body, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("cache put %s: %w", key, err)
	}
	return nil
}

// Purge deletes every expired entry and reports how many were removed.
func (s *Store) Purge() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl).UnixMilli()
	res, err := s.db.Exec(`DELETE FROM responses WHERE stored_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return res.RowsAffected()
}

// Clear removes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM responses`); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Len returns the number of stored entries, fresh or not.
func (s *Store) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
