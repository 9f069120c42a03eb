package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteCache is a file-backed page cache. It is the default for single-host
// use: page hashes survive across runs without any external service.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSQLiteCache opens (or creates) the cache database at dbPath.
// If ttlSeconds is 0 or negative, entries never expire.
func NewSQLiteCache(dbPath string, ttlSeconds int) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}

	c := &SQLiteCache{db: db, ttl: ttl}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	_, err := c.db.Exec(schema)
	return err
}

// Get retrieves a value. Expired entries are deleted lazily on read.
func (c *SQLiteCache) Get(key string) (string, bool) {
	var value string
	var updatedAt int64

	row := c.db.QueryRow(`SELECT value, updated_at FROM pages WHERE key = ?`, key)
	if err := row.Scan(&value, &updatedAt); err != nil {
		return "", false
	}

	if c.ttl > 0 && time.Since(time.Unix(updatedAt, 0)) > c.ttl {
		_, _ = c.db.Exec(`DELETE FROM pages WHERE key = ?`, key)
		return "", false
	}

	return value, true
}

// Set stores a value, replacing any previous entry for the key.
func (c *SQLiteCache) Set(key string, value string) error {
	_, err := c.db.Exec(
		`INSERT INTO pages (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// Len returns the number of stored entries, expired ones included.
func (c *SQLiteCache) Len() (int, error) {
	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Verify SQLiteCache implements PageCache
var _ PageCache = (*SQLiteCache)(nil)
