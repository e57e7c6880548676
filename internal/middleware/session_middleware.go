package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the caller's session identity. A request without
// a session header gets a fresh UUID, echoed back so the client can keep it.
// Sessions are anonymous; there is no account or token behind them.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			c.Response().Header().Set(SessionHeader, sessionID)
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
