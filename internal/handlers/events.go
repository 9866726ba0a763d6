// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/labstack/echo/v4"
)

type eventRequest struct {
	EventName string          `json:"eventName" validate:"required"`
	PagePath  string          `json:"pagePath"`
	PageTitle string          `json:"pageTitle"`
	Meta      json.RawMessage `json:"meta"`
}

// SubmitEvent records one analytics event. The request context fields are
// taken from the inbound request, never from the payload.
func (h *Handlers) SubmitEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	meta := string(req.Meta)
	if meta == "null" {
		meta = ""
	}

	r := c.Request()
	id, err := h.repo.CreateEvent(r.Context(), repository.NewEvent{
		EventName:      req.EventName,
		PagePath:       req.PagePath,
		PageTitle:      req.PageTitle,
		Meta:           meta,
		UserAgent:      r.UserAgent(),
		IPAddress:      c.RealIP(),
		Referrer:       r.Referer(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		ForwardedFor:   r.Header.Get(echo.HeaderXForwardedFor),
	})
	if err != nil {
		slog.Error("storing event failed", "error", err)
		return fail(c, http.StatusInternalServerError, "storing event failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "id": id})
}

// ListEvents returns analytics events newest-first, admin only.
func (h *Handlers) ListEvents(c echo.Context) error {
	rows, err := h.repo.ListEvents(c.Request().Context(), queryLimit(c))
	if err != nil {
		slog.Error("reading events failed", "error", err)
		return fail(c, http.StatusInternalServerError, "reading events failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "rows": rows})
}
