package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Every endpoint answers with a {success, message, ...} envelope. A failed
// request always carries a human-readable message and never a stack trace.

func ok(c echo.Context, fields map[string]interface{}) error {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
