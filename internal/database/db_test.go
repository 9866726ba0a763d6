// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package database_test

import (
	"path/filepath"
	"testing"

	"github.com/arlott/portfolio-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	db, err := database.Open(":memory:")

	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	require.NoError(t, err)
}

func TestOpen_FileDSN(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "portfolio.db")

	db, err := database.Open(dsn)

	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	var mode string
	err = db.Get(&mode, "PRAGMA journal_mode")
	require.NoError(t, err)
	assert.Equal(t, "wal", mode)
}

func TestOpen_MigrationsApplied(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	for _, table := range []string{"users", "contacts", "events"} {
		var count int64
		err = db.Get(&count, "SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	err = database.RunMigrations(db.DB)
	require.NoError(t, err)
}

func TestOpen_EventContextColumns(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	// Columns added by the second migration must be present and nullable.
	_, err = db.Exec("INSERT INTO events (event_name, created_at) VALUES ('page_view', '2025-01-01 00:00:00')")
	require.NoError(t, err)

	var ip *string
	err = db.Get(&ip, "SELECT ip_address FROM events LIMIT 1")
	require.NoError(t, err)
	assert.Nil(t, ip)
}
