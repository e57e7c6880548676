package middleware

import (
	"net/http"

	"aromaSpa/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo HTTPErrorHandler for errors that escape
// the handlers (bad routes, panics caught by Recover, bind failures).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", "error", err, "path", c.Request().URL.Path)
	}

	if writeErr := c.JSON(code, map[string]interface{}{"message": message}); writeErr != nil {
		logger.Error("failed to write error response", writeErr)
	}
}
