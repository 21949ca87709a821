package rest

import (
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts layered errors into HTTP responses. Sentinel
// lookups run first so a wrapped not-found never surfaces as a 500.
func handleError(c echo.Context, err error, operation string) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	case errors.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.IsTimeoutError(err):
		status = http.StatusGatewayTimeout
		message = "upstream operation timed out"
	}

	if appErr, ok := err.(*errors.AppError); ok {
		switch appErr.Code {
		case errors.ErrCodeValidation:
			status = http.StatusBadRequest
			message = appErr.Message
		case errors.ErrCodeNotFound:
			status = http.StatusNotFound
			message = appErr.Message
		case errors.ErrCodeTimeout:
			status = http.StatusGatewayTimeout
			message = appErr.Message
		case errors.ErrCodeFetch, errors.ErrCodeSynthesis, errors.ErrCodeDelivery:
			status = http.StatusBadGateway
			message = appErr.Message
		case errors.ErrCodeDatabase:
			status = http.StatusInternalServerError
			message = "storage error"
		}
	}

	logger.Logger.Error("request failed",
		"operation", operation,
		"status", status,
		"error", err,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"request_id", c.Response().Header().Get("X-Request-ID"),
	)

	return c.JSON(status, map[string]string{"error": message})
}

func handleValidationError(c echo.Context, message, field string) error {
	logger.Logger.Warn("request validation failed",
		"field", field,
		"message", message,
		"path", c.Request().URL.Path,
	)
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": message,
		"field": field,
	})
}
