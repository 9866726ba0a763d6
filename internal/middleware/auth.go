// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware provides the authorization gates for the API.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/arlott/portfolio-api/internal/services/auth"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// AdminToken gates a route behind the static admin shared secret, taken
// from the X-Admin-Token header or the token query parameter.
func AdminToken(cfg *config.AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("X-Admin-Token")
			if token == "" {
				token = c.QueryParam("token")
			}

			if cfg.AdminToken == "" ||
				subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) != 1 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "error": "unauthorized"})
			}
			return next(c)
		}
	}
}

// Bearer gates a route behind a signed bearer token. Verified claims are
// stored on the request context for the handler.
func Bearer(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "error": "unauthorized"})
			}

			claims, err := codec.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"ok": false, "error": "unauthorized"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// TokenClaims returns the claims stored by Bearer, if any.
func TokenClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	return claims, ok
}
