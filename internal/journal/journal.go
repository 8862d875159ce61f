// Package journal keeps the recent-activity feed in an in-memory SQLite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/tubetrack/internal/models"
)

// MemoryDSN opens a private in-memory database; the feed lives as long as
// the process.
const MemoryDSN = ":memory:"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS activity (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	id          TEXT NOT NULL UNIQUE,
	kind        TEXT NOT NULL,
	title       TEXT NOT NULL,
	playlist    TEXT NOT NULL DEFAULT '',
	occurred_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_activity_kind ON activity(kind);
`

// DB wraps a sql.DB with journal operations.
type DB struct {
	conn *sql.DB
}

// Open opens the journal database and applies the schema.
func Open(dsn string) (*DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	// Each connection to :memory: is a separate database.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record appends an activity entry. A zero At is stored as-is; callers pass
// the time from their clock.
func (db *DB) Record(ctx context.Context, a models.Activity) (models.Activity, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO activity (id, kind, title, playlist, occurred_at)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Kind, a.Title, a.Playlist, a.At.UTC())
	if err != nil {
		return models.Activity{}, fmt.Errorf("journal: record: %w", err)
	}
	return a, nil
}

// Recent returns up to limit entries, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, kind, title, playlist, occurred_at
		FROM activity
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: recent: %w", err)
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		var at time.Time
		if err := rows.Scan(&a.ID, &a.Kind, &a.Title, &a.Playlist, &at); err != nil {
			return nil, err
		}
		a.At = at.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountByKind returns how many entries of kind were recorded.
func (db *DB) CountByKind(ctx context.Context, kind string) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM activity WHERE kind = ?`, kind).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("journal: count: %w", err)
	}
	return n, nil
}
