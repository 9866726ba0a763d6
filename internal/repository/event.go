// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/arlott/portfolio-api/internal/models"
)

const (
	maxEventNameLen      = 100
	maxPagePathLen       = 300
	maxPageTitleLen      = 300
	maxMetaLen           = 4000
	maxUserAgentLen      = 500
	maxIPAddressLen      = 100
	maxReferrerLen       = 500
	maxAcceptLanguageLen = 200
	maxForwardedForLen   = 300

	defaultEventLimit = 100
	maxEventLimit     = 500
)

// NewEvent carries one analytics event into the store. The request context
// fields (user agent, addresses, referrer) come from the HTTP layer, never
// from the client payload.
type NewEvent struct {
	EventName      string
	PagePath       string
	PageTitle      string
	Meta           string // serialized JSON, empty means absent
	UserAgent      string
	IPAddress      string
	Referrer       string
	AcceptLanguage string
	ForwardedFor   string
}

// CreateEvent appends an analytics event. Only the event name is required;
// every field is truncated to its column limit.
func (r *Repository) CreateEvent(ctx context.Context, ev NewEvent) (int64, error) {
	if ev.EventName == "" {
		return 0, ErrMissingField
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events
		 (event_name, page_path, page_title, meta, user_agent, ip_address,
		  referrer, accept_language, forwarded_for, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		truncate(ev.EventName, maxEventNameLen),
		truncate(ev.PagePath, maxPagePathLen),
		truncate(ev.PageTitle, maxPageTitleLen),
		nullable(truncate(ev.Meta, maxMetaLen)),
		truncate(ev.UserAgent, maxUserAgentLen),
		truncate(ev.IPAddress, maxIPAddressLen),
		truncate(ev.Referrer, maxReferrerLen),
		truncate(ev.AcceptLanguage, maxAcceptLanguageLen),
		truncate(ev.ForwardedFor, maxForwardedForLen),
		time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEvents returns analytics events newest-first, capped at the maximum
// page size even when the caller requests more.
func (r *Repository) ListEvents(ctx context.Context, limit int) ([]models.AnalyticsEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	rows := make([]models.AnalyticsEvent, 0, limit)
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
