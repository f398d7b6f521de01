// Package response writes the JSON envelopes of the mock backend. Catalog and
// chat replies are written bare because clients decode them directly.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified envelope for status endpoints
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-friendly message
	Data    any    `json:"data,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Raw writes data without an envelope.
func Raw(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}
