// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package repository owns all rows in the SQLite store. No other package
// reads or writes them directly.
package repository

import (
	"errors"
	"strings"

	"github.com/vinovest/sqlx"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user with the same normalized
	// email already exists.
	ErrDuplicateEmail = errors.New("email exists")
	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("missing required field")
)

// Repository wraps the SQLite connection for database operations.
type Repository struct {
	db *sqlx.DB
}

// New creates a new Repository instance.
func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// truncate caps a value at the column's storage limit. Overlong input is
// accepted and cut, not rejected.
func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// nullable maps the empty string to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
