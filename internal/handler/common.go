// Package handler exposes the HTTP handlers of the back-office API.  All
// state lives in the remote backend; handlers fetch fresh input per request,
// run the schedule transformations and return derived views.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
)

// backendError maps a failed backend call onto our own response.  An
// *APIError mirrors the backend's status and message so the UI can show the
// real cause; transport-level failures become 502 because the backend never
// answered.  No retry happens here: every failure is local to one
// user-initiated action.
func backendError(c echo.Context, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, echo.Map{"error": apiErr.Message})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": "backend unavailable"})
}

// dateParam parses the optional ?date=YYYY-MM-DD query parameter, defaulting
// to today in server-local time.  The boolean is false when a supplied value
// is malformed.
func dateParam(c echo.Context) (time.Time, bool) {
	raw := c.QueryParam("date")
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
