package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const pragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Open opens the embedded SQLite database at path and verifies it with a
// ping. WAL mode keeps readers live while the single writer connection
// mutates; busy_timeout covers transient lock contention.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	return open(ctx, fmt.Sprintf("file:%s?%s", path, pragmas))
}

// OpenInMemory opens a named shared in-memory database, used by tests.
func OpenInMemory(ctx context.Context, name string) (*sql.DB, error) {
	return open(ctx, fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", name, pragmas))
}

func open(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// SQLite allows one writer at a time; a single pooled connection
	// serializes writes ahead of the driver's lock instead of behind it.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return conn, nil
}
