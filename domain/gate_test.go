package domain

import (
	"testing"
	"time"
)

func TestEvaluateGate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name             string
		status           SubscriptionStatus
		pausedUntil      *time.Time
		wantSend         bool
		wantReason       SkipReason
		wantPauseExpired bool
	}{
		{
			name:     "active subscriber sends",
			status:   SubscriptionActive,
			wantSend: true,
		},
		{
			name:     "unset status defaults to send",
			status:   "",
			wantSend: true,
		},
		{
			name:       "paused with no end date skips indefinitely",
			status:     SubscriptionPaused,
			wantSend:   false,
			wantReason: SkipPausedIndefinite,
		},
		{
			name:        "paused until tomorrow skips temporarily",
			status:      SubscriptionPaused,
			pausedUntil: &tomorrow,
			wantSend:    false,
			wantReason:  SkipPausedTemporary,
		},
		{
			name:             "pause expired yesterday auto-resumes",
			status:           SubscriptionPaused,
			pausedUntil:      &yesterday,
			wantSend:         true,
			wantPauseExpired: true,
		},
		{
			name:             "pause expiring exactly now resumes",
			status:           SubscriptionPaused,
			pausedUntil:      &now,
			wantSend:         true,
			wantPauseExpired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscriber{
				Email: "reader@example.com",
				Preferences: Preferences{
					SubscriptionStatus: tt.status,
					PausedUntil:        tt.pausedUntil,
				},
			}

			decision := EvaluateGate(sub, now)

			if decision.Send != tt.wantSend {
				t.Errorf("Send = %v, want %v", decision.Send, tt.wantSend)
			}
			if !tt.wantSend && decision.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", decision.Reason, tt.wantReason)
			}
			if decision.PauseExpired != tt.wantPauseExpired {
				t.Errorf("PauseExpired = %v, want %v", decision.PauseExpired, tt.wantPauseExpired)
			}
			if tt.wantReason == SkipPausedTemporary && decision.Until == nil {
				t.Error("temporary pause should report Until")
			}
		})
	}
}
