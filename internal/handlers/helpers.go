// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// fail writes the failure envelope with the given status code.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"ok": false, "error": msg})
}

// queryLimit parses the limit query parameter; 0 means "use the default".
func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
