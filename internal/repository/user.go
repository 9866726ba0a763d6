// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/arlott/portfolio-api/internal/models"
)

const (
	maxUserEmailLen = 200
	maxFullNameLen  = 200
	maxPhoneLen     = 50
)

// CreateUser inserts a new user row. The caller passes an already
// normalized email and an encoded password hash. Returns ErrDuplicateEmail
// when the email is taken.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = truncate(user.Email, maxUserEmailLen)
	user.FullName = truncate(user.FullName, maxFullNameLen)
	if user.Phone != nil {
		phone := truncate(*user.Phone, maxPhoneLen)
		user.Phone = &phone
	}
	user.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, full_name, phone, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.FullName, user.Phone, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	user.ID, err = res.LastInsertId()
	return err
}

// GetUserByEmail retrieves a user by their normalized email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE email = ?", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
