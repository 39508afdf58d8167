package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger emits one slog line per request with method, path, status
// and duration.  Server errors log at error level; the request id set by the
// RequestID middleware is included when present.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// commit the error response so the logged status is the
				// one the client sees
				c.Error(err)
			}
			res := c.Response()
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", res.Status,
				"duration", time.Since(start).Round(time.Millisecond),
			}
			if id := res.Header().Get(echo.HeaderXRequestID); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			if res.Status >= 500 {
				slog.Error("request", attrs...)
			} else {
				slog.Info("request", attrs...)
			}
			return err
		}
	}
}
