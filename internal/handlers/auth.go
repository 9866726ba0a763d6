// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arlott/portfolio-api/internal/middleware"
	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/arlott/portfolio-api/internal/services/auth"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new account.
func (h *Handlers) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	id, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return fail(c, http.StatusBadRequest, "email exists")
		case errors.Is(err, auth.ErrInvalidInput):
			return fail(c, http.StatusBadRequest, err.Error())
		default:
			slog.Error("registration failed", "error", err)
			return fail(c, http.StatusInternalServerError, "registration failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "id": id})
}

// Login authenticates a user and returns a bearer token.
func (h *Handlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "email and password required")
	}

	identity, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		slog.Error("login failed", "error", err)
		return fail(c, http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "token": token, "user": identity})
}

// Me reports the identity behind the verified bearer token.
func (h *Handlers) Me(c echo.Context) error {
	claims, ok := middleware.TokenClaims(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	identity, err := h.auth.Identify(c.Request().Context(), claims)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "unauthorized")
		}
		slog.Error("identity lookup failed", "error", err)
		return fail(c, http.StatusInternalServerError, "identity lookup failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "user": identity})
}
