// Package store records privacy-conscious site metrics in SQLite: visits
// with hashed IPs and contact submission outcomes without message contents.
package store

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with the metrics schema.
type DB struct {
	*sql.DB
	salt string
}

// Open creates or opens the database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return newDB(sqlDB)
}

// OpenMemory creates an in-memory database.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	return newDB(sqlDB)
}

func newDB(sqlDB *sql.DB) (*DB, error) {
	salt, err := RandomToken()
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	d := &DB{DB: sqlDB, salt: salt}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_hash TEXT NOT NULL,
	outcome TEXT NOT NULL CHECK(outcome IN ('success','error')),
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
CREATE INDEX IF NOT EXISTS idx_submissions_timestamp ON submissions(timestamp);
`

func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash returns a salted, truncated digest of an identifier such as an IP.
// The salt lives only as long as the process, so hashes are consistent
// within a run and unlinkable across restarts.
func (d *DB) Hash(v string) string {
	sum := sha256.Sum256([]byte(v + d.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a page view.
func (d *DB) RecordVisit(ip, userAgent, path string, at time.Time) error {
	_, err := d.Exec(`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		d.Hash(ip), userAgent, path, at.UTC())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordSubmission stores the outcome of a contact submission.
func (d *DB) RecordSubmission(session, outcome string, at time.Time) error {
	_, err := d.Exec(`INSERT INTO submissions (session_hash, outcome, timestamp) VALUES (?, ?, ?)`,
		d.Hash(session), outcome, at.UTC())
	if err != nil {
		return fmt.Errorf("recording submission: %w", err)
	}
	return nil
}

// Retention is how long visits and submission outcomes are kept.
const Retention = 365 * 24 * time.Hour

// Cleanup removes rows older than the retention window.
func (d *DB) Cleanup(now time.Time, retention time.Duration) (int64, error) {
	cutoff := now.Add(-retention).UTC()
	var total int64
	for _, table := range []string{"visitors", "submissions"} {
		res, err := d.Exec(`DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleaning %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		log.Printf("Privacy cleanup: removed %d records older than %s", total, retention)
	}
	return total, nil
}

// RunCleanup applies the retention window now and then every interval until
// stop is closed.
func (d *DB) RunCleanup(interval, retention time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := d.Cleanup(time.Now(), retention); err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
		}
		select {
		case <-ticker.C:
		case <-stop:
			return
		}
	}
}
