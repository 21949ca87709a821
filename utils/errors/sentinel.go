package errors

import "errors"

// Sentinel errors usable with errors.Is across layers.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrBriefingNotFound   = errors.New("briefing not found")
	ErrSourceNotFound     = errors.New("source not found")
	ErrNoFeedDiscovered   = errors.New("no feed discovered on page")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrOperationTimeout    = errors.New("operation timeout")
	ErrInvalidInput        = errors.New("invalid input")
)

// IsNotFound reports whether err represents any missing-record condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSubscriberNotFound) ||
		errors.Is(err, ErrBriefingNotFound) ||
		errors.Is(err, ErrSourceNotFound)
}

// IsTimeoutError reports whether err represents a timeout condition.
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout)
}

// IsValidationError reports whether err represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
