// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vinovest/sqlx"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// Open creates a database connection, configures SQLite for concurrent
// appends and applies all pending migrations.
func Open(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		dsn = "./data/portfolio.db"
	}

	mem := isMemory(dsn)

	// Create directory for file-based databases
	if !mem {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
	}

	conn, err := sqlx.Open("sqlite", addDefaultParams(dsn))
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection, so the pool must not
	// hand out a second one.
	if mem {
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(time.Hour)
	}

	if err := configureSQLite(context.Background(), conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := RunMigrations(conn.DB); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

func isMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// addDefaultParams adds recommended connection parameters if not already present.
func addDefaultParams(dsn string) string {
	defaults := []string{
		"_txlock=immediate",
		"_pragma=busy_timeout(5000)",
		"_pragma=foreign_keys(1)",
	}

	for _, param := range defaults {
		key := param[:strings.IndexByte(param, '=')+1]
		if strings.Contains(dsn, key) && key != "_pragma=" {
			continue
		}
		if strings.Contains(dsn, param) {
			continue
		}
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + param
	}

	return dsn
}

// configureSQLite sets PRAGMAs so writers append to the WAL instead of
// taking an exclusive lock, keeping readers unblocked.
func configureSQLite(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA cache_size = 2000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return err
		}
	}

	return nil
}
