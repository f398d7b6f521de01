package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "bezgo/internal/delivery/context"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := deliverycontext.GetRequestID(c)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Request validation failures
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		appErr := domainerrors.ErrValidationFailed.WithDetails(validationErrs.Error())
		m.write(c, appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr, requestID))

		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr, requestID))

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, domainerrors.ErrorResponse{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
			RequestID: requestID,
		})

		return
	}

	// Default to internal error, log error and return generic error
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, domainerrors.NewErrorResponse(domainerrors.ErrInternalError, requestID))
}

func (m *ErrorMiddleware) write(c echo.Context, code int, body domainerrors.ErrorResponse) {
	if err := c.JSON(code, body); err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
