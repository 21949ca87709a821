package domain

import "time"

// SkipReason explains why a dispatch attempt was not executed. GateSkip
// outcomes are expected results, not errors.
type SkipReason string

const (
	SkipNoSources        SkipReason = "no_sources"
	SkipPausedIndefinite SkipReason = "paused_indefinite"
	SkipPausedTemporary  SkipReason = "paused_temporary"
)

// GateDecision is the outcome of evaluating a subscriber's pause state.
type GateDecision struct {
	Send bool
	// Reason is set when Send is false.
	Reason SkipReason
	// Until is set for temporary pauses.
	Until *time.Time
	// PauseExpired signals that a past paused_until was observed; the
	// caller is responsible for persisting the implied transition back to
	// active. The gate itself never mutates state.
	PauseExpired bool
}

// EvaluateGate maps subscriber pause state to a send/skip decision. Pure
// function, no I/O; must run once per dispatch attempt before any fetch
// work begins.
func EvaluateGate(sub *Subscriber, now time.Time) GateDecision {
	if sub.Preferences.SubscriptionStatus != SubscriptionPaused {
		return GateDecision{Send: true}
	}

	until := sub.Preferences.PausedUntil
	if until == nil {
		return GateDecision{Send: false, Reason: SkipPausedIndefinite}
	}

	if now.Before(*until) {
		return GateDecision{Send: false, Reason: SkipPausedTemporary, Until: until}
	}

	// Pause has lapsed: auto-expire.
	return GateDecision{Send: true, PauseExpired: true}
}
