// Package audit keeps a local append-only log of record actions taken
// from this machine. The refund and update paths write here so an
// operator can reconstruct what they did even after the server state
// has moved on.
package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFile = "audit.db"

const schema = `
CREATE TABLE IF NOT EXISTS actions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	at TEXT NOT NULL,
	action TEXT NOT NULL,
	target TEXT NOT NULL,
	outcome TEXT NOT NULL,
	message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_actions_at ON actions(at);
`

// Entry is one logged action.
type Entry struct {
	ID      int64
	At      time.Time
	Action  string
	Target  string
	Outcome string
	Message string
}

// Log wraps the audit database.
type Log struct {
	conn *sql.DB
	dir  string
}

// Open opens (creating if needed) the audit log under dir.
func Open(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}

	conn, err := sql.Open("sqlite", filepath.Join(dir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	// WAL keeps reads cheap while writes are serialized
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Busy timeout as fallback protection (500ms, matches lock timeout)
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Log{conn: conn, dir: dir}, nil
}

// Close closes the audit database.
func (l *Log) Close() error {
	return l.conn.Close()
}

// Append writes one action to the log.
func (l *Log) Append(action, target, outcome, message string) error {
	return l.withWriteLock(func() error {
		_, err := l.conn.Exec(
			`INSERT INTO actions (at, action, target, outcome, message) VALUES (?, ?, ?, ?, ?)`,
			timestampNow(), action, target, outcome, message,
		)
		if err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}
		return nil
	})
}

// RecordAction logs an action best-effort. Audit failures never block
// the operation that triggered them.
func (l *Log) RecordAction(action, target, outcome, message string) {
	if l == nil {
		return
	}
	_ = l.Append(action, target, outcome, message)
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := l.conn.Query(
		`SELECT id, at, action, target, outcome, message FROM actions ORDER BY at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Action, &e.Target, &e.Outcome, &e.Message); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.At, _ = time.Parse(time.RFC3339Nano, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// timestampNow returns UTC RFC3339Nano text so SQLite's lexicographic
// ordering matches chronological order.
func timestampNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// withWriteLock executes fn while holding an exclusive write lock,
// so two opsdesk processes sharing a config dir cannot interleave writes.
func (l *Log) withWriteLock(fn func() error) error {
	locker := newWriteLocker(l.dir)
	if err := locker.acquire(defaultTimeout); err != nil {
		return err
	}
	defer locker.release()
	return fn()
}
