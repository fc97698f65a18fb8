package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/provider"
)

// badRequest is the only non-200 validation failure shape: the caller omitted
// a field the endpoint cannot work without. Upstream failures never take this
// path; they degrade inside a 200 envelope instead.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   message,
	})
}

// upstreamError renders a provider failure for the envelope's error field. A
// missing credential is reported the same way as a transient outage so API
// consumers cannot distinguish the two.
func upstreamError(name string, err error) string {
	if errors.Is(err, provider.ErrNotConfigured) {
		return name + " is currently unavailable"
	}
	return name + ": " + err.Error()
}
