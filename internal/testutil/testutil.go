// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"testing"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/arlott/portfolio-api/internal/database"
	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/arlott/portfolio-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. Returns both the connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, repository.New(db)
}

// AuthConfig returns an auth configuration suitable for tests. The backdoor
// stays disabled unless a test flips it explicitly.
func AuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		AdminToken:  "test-admin-token",
		TokenSecret: "test-signing-secret",
	}
}

// NewEcho returns an Echo instance with the request validator installed,
// matching what the server sets up.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}
