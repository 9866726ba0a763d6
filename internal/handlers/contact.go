// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact records a contact form submission. Overlong fields are
// truncated by the store, not rejected.
func (h *Handlers) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.repo.CreateContact(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		slog.Error("storing contact failed", "error", err)
		return fail(c, http.StatusInternalServerError, "storing contact failed")
	}

	if h.notifier.Enabled() {
		// Best effort only; the submission already succeeded.
		go func() {
			if err := h.notifier.ContactReceived(req.Name, req.Email, req.Message); err != nil {
				slog.Error("contact notification failed", "error", err)
			}
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "id": id})
}

// ListContacts returns contact messages newest-first, admin only.
func (h *Handlers) ListContacts(c echo.Context) error {
	rows, err := h.repo.ListContacts(c.Request().Context(), queryLimit(c))
	if err != nil {
		slog.Error("reading contacts failed", "error", err)
		return fail(c, http.StatusInternalServerError, "reading contacts failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "rows": rows})
}
