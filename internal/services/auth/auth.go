// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements registration, login and token-based identity.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/arlott/portfolio-api/internal/models"
	"github.com/arlott/portfolio-api/internal/repository"
)

var (
	// ErrInvalidInput is returned when registration input fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned for every failed login. A missing
	// account and a wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	// RoleUser and RoleAdmin are the only roles the backend knows.
	RoleUser  = "user"
	RoleAdmin = "admin"

	// adminSubject is the token subject for the administrative identity.
	adminSubject = "admin"

	minPasswordLen = 8
)

// Identity is the public shape of an authenticated principal.
type Identity struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// adminIdentity is reported for the backdoor login and for tokens carrying
// the admin subject. It never corresponds to a stored user.
var adminIdentity = Identity{ID: 0, Email: "admin", FullName: "Administrator", Role: RoleAdmin}

// Service wires the credential store, the password hasher and the token
// codec together.
type Service struct {
	repo          *repository.Repository
	codec         *TokenCodec
	allowBackdoor bool
}

// NewService creates the auth service from the startup configuration.
func NewService(repo *repository.Repository, cfg *config.AuthConfig) *Service {
	return &Service{
		repo:          repo,
		codec:         NewTokenCodec(cfg),
		allowBackdoor: cfg.AllowAdminBackdoor,
	}
}

// Codec exposes the token codec for the bearer middleware.
func (s *Service) Codec() *TokenCodec {
	return s.codec
}

// NormalizeEmail lowercases and trims an email for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and returns its id. It persists exactly
// one row on success; there is no other mutation path for users.
func (s *Service) Register(ctx context.Context, email, password, fullName, phone string) (int64, error) {
	email = NormalizeEmail(email)
	switch {
	case !strings.Contains(email, "@"):
		return 0, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	case len(password) < minPasswordLen:
		return 0, fmt.Errorf("%w: password too short", ErrInvalidInput)
	case fullName == "":
		return 0, fmt.Errorf("%w: fullName required", ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	}
	if phone != "" {
		user.Phone = &phone
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login authenticates a user and issues a bearer token. Both an unknown
// email and a wrong password produce the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (Identity, string, error) {
	if s.allowBackdoor && email == "admin" && password == "admin" {
		token, err := s.codec.Sign(adminSubject, RoleAdmin)
		if err != nil {
			return Identity{}, "", err
		}
		return adminIdentity, token, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Identity{}, "", ErrInvalidCredentials
		}
		return Identity{}, "", err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return Identity{}, "", ErrInvalidCredentials
	}

	token, err := s.codec.Sign(strconv.FormatInt(user.ID, 10), RoleUser)
	if err != nil {
		return Identity{}, "", err
	}

	return Identity{ID: user.ID, Email: user.Email, FullName: user.FullName, Role: RoleUser}, token, nil
}

// Identify materializes the identity behind a verified claim set. The
// admin subject bypasses the store entirely.
func (s *Service) Identify(ctx context.Context, claims *Claims) (Identity, error) {
	if claims.Subject == adminSubject {
		return adminIdentity, nil
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, repository.ErrNotFound
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: user.ID, Email: user.Email, FullName: user.FullName, Role: RoleUser}, nil
}
