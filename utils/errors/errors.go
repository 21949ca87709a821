// Package errors provides structured error handling for the briefing backend.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be classified at the transport boundary and in
// the dispatch worker's error log.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeDatabase   ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeFetch      ErrorCode = "FETCH_ERROR"
	ErrCodeSynthesis  ErrorCode = "SYNTHESIS_ERROR"
	ErrCodeDelivery   ErrorCode = "DELIVERY_ERROR"
	ErrCodeTimeout    ErrorCode = "TIMEOUT_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for persistence failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// FetchError creates an AppError for per-source fetch failures.
func FetchError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeFetch, Message: message, Cause: cause, Context: context}
}

// SynthesisError creates an AppError for LLM synthesis failures.
func SynthesisError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeSynthesis, Message: message, Cause: cause, Context: context}
}

// DeliveryError creates an AppError for email delivery failures.
func DeliveryError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDelivery, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for timed-out operations.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause, Context: context}
}

// NotFoundError creates an AppError for missing records.
func NotFoundError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Context: context}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []any{
			"operation", operation,
			"code", string(appErr.Code),
			"message", appErr.Message,
		}
		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}
		for k, v := range appErr.Context {
			args = append(args, k, v)
		}
		logger.Error("application error", args...)
		return
	}

	logger.Error("unexpected error", "operation", operation, "error", err)
}
