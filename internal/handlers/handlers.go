// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP endpoint layer. Every response uses
// the {ok, ...} envelope.
package handlers

import (
	"net/http"

	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/arlott/portfolio-api/internal/services/auth"
	"github.com/arlott/portfolio-api/internal/services/notify"
	"github.com/labstack/echo/v4"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	repo     *repository.Repository
	auth     *auth.Service
	notifier *notify.Service
}

// New creates a new Handlers instance.
func New(repo *repository.Repository, authService *auth.Service, notifier *notify.Service) *Handlers {
	return &Handlers{repo: repo, auth: authService, notifier: notifier}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "status": "healthy"})
}
