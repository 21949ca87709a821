package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive SubscriptionStatus = "active"
	SubscriptionPaused SubscriptionStatus = "paused"
)

type Tier string

const (
	TierTrial   Tier = "trial"
	TierActive  Tier = "active"
	TierExpired Tier = "expired"
)

// Preferences holds subscriber-controlled delivery settings.
type Preferences struct {
	DeliveryTime       string             `json:"delivery_time"` // "HH:MM", subscriber-local
	Timezone           string             `json:"timezone"`
	LLMProvider        string             `json:"llm_provider"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	PausedUntil        *time.Time         `json:"paused_until,omitempty"`
}

// Stats are cumulative per-subscriber counters, monotonically
// non-decreasing outside administrative resets.
type Stats struct {
	InputTokens   int64 `json:"input_tokens"`
	OutputTokens  int64 `json:"output_tokens"`
	BriefingsSent int64 `json:"briefings_sent"`
}

// Subscriber is identified by email. Sources are owned by the subscriber
// and unique by normalized feed endpoint.
type Subscriber struct {
	Email        string      `json:"email"`
	Sources      []Source    `json:"sources"`
	Preferences  Preferences `json:"preferences"`
	Tier         Tier        `json:"tier"`
	Stats        Stats       `json:"stats"`
	LastDigestAt *time.Time  `json:"last_digest_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// EnabledSources returns the sources eligible for aggregation. Disabled
// sources are excluded entirely and never fetched.
func (s *Subscriber) EnabledSources() []Source {
	enabled := make([]Source, 0, len(s.Sources))
	for _, src := range s.Sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}
	return enabled
}

// TrialDaysLeft returns the remaining whole days of a trial, never
// negative. Only meaningful when Tier is TierTrial.
func (s *Subscriber) TrialDaysLeft(now time.Time, trialDays int) int {
	end := s.CreatedAt.AddDate(0, 0, trialDays)
	if !now.Before(end) {
		return 0
	}
	return int(end.Sub(now).Hours()/24) + 1
}
