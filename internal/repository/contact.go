// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/arlott/portfolio-api/internal/models"
)

const (
	maxContactNameLen    = 200
	maxContactEmailLen   = 200
	maxContactMessageLen = 2000

	defaultContactLimit = 50
	maxContactLimit     = 200
)

// CreateContact appends a contact form submission. All three fields are
// required; overlong values are truncated before storage.
func (r *Repository) CreateContact(ctx context.Context, name, email, message string) (int64, error) {
	if name == "" || email == "" || message == "" {
		return 0, ErrMissingField
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO contacts (name, email, message, created_at) VALUES (?, ?, ?, ?)",
		truncate(name, maxContactNameLen),
		truncate(email, maxContactEmailLen),
		truncate(message, maxContactMessageLen),
		time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListContacts returns contact messages newest-first. A non-positive limit
// falls back to the default; the hard cap applies regardless of what the
// caller asks for.
func (r *Repository) ListContacts(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	if limit <= 0 {
		limit = defaultContactLimit
	}
	if limit > maxContactLimit {
		limit = maxContactLimit
	}

	rows := make([]models.ContactMessage, 0, limit)
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM contacts ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
