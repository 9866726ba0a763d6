// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package models holds the row structs for the persistence layer.
package models

import (
	"time"
)

// User is a registered account. The password hash never leaves the backend.
type User struct { //nolint:govet // fieldalignment not critical for models
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// ContactMessage is a single contact form submission. Rows are append-only.
type ContactMessage struct { //nolint:govet // fieldalignment not critical for models
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// AnalyticsEvent is one recorded pageview or interaction. The request
// context columns were added after the first deployments, so they are
// nullable and historic rows carry NULL there.
type AnalyticsEvent struct { //nolint:govet // fieldalignment not critical for models
	ID             int64     `db:"id" json:"id"`
	EventName      string    `db:"event_name" json:"eventName"`
	PagePath       *string   `db:"page_path" json:"pagePath"`
	PageTitle      *string   `db:"page_title" json:"pageTitle"`
	Meta           *string   `db:"meta" json:"meta"`
	UserAgent      *string   `db:"user_agent" json:"userAgent"`
	IPAddress      *string   `db:"ip_address" json:"ipAddress"`
	Referrer       *string   `db:"referrer" json:"referrer"`
	AcceptLanguage *string   `db:"accept_language" json:"acceptLanguage"`
	ForwardedFor   *string   `db:"forwarded_for" json:"forwardedFor"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
