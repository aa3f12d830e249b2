// Package cache persists per-file analysis results across runs in a
// SQLite database (modernc.org/sqlite, the pack's pure-Go driver — no
// cgo toolchain required on the analysis machine), keyed by the file's
// content hash so an unchanged module is skipped on the next run.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/go-bsl/bslint/internal/analyzer"
)

// Cache wraps a single SQLite connection holding one "file_results" table.
type Cache struct {
	db *sql.DB
}

// Open creates (or reuses) the SQLite database at path and ensures its
// schema exists. path may be ":memory:" for a throwaway, single-process
// cache (e.g. in tests).
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	const schema = `
CREATE TABLE IF NOT EXISTS file_results (
	path TEXT PRIMARY KEY,
	content_hash TEXT NOT NULL,
	issues_json TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying connection.
func (c *Cache) Close() error { return c.db.Close() }

// Hash returns the content hash Cache uses to key a file's cached result.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached issues for path if its content hash still
// matches what was last cached, and whether a usable entry was found.
func (c *Cache) Lookup(path, contentHash string) ([]analyzer.Issue, bool) {
	var storedHash, issuesJSON string
	err := c.db.QueryRow(
		`SELECT content_hash, issues_json FROM file_results WHERE path = ?`, path,
	).Scan(&storedHash, &issuesJSON)
	if err != nil || storedHash != contentHash {
		return nil, false
	}
	var issues []analyzer.Issue
	if err := json.Unmarshal([]byte(issuesJSON), &issues); err != nil {
		return nil, false
	}
	return issues, true
}

// Store records path's issues under contentHash, replacing any prior entry.
func (c *Cache) Store(path, contentHash string, issues []analyzer.Issue, updatedAt int64) error {
	payload, err := json.Marshal(issues)
	if err != nil {
		return fmt.Errorf("cache: marshal issues for %s: %w", path, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO file_results (path, content_hash, issues_json, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			content_hash = excluded.content_hash,
			issues_json = excluded.issues_json,
			updated_at = excluded.updated_at`,
		path, contentHash, string(payload), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", path, err)
	}
	return nil
}

// Forget drops any cached entry for path, used when a file is removed
// from the analyzed tree between runs.
func (c *Cache) Forget(path string) error {
	_, err := c.db.Exec(`DELETE FROM file_results WHERE path = ?`, path)
	return err
}
