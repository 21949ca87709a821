package domain

import "time"

// UsageEvent is one append-only accounting record, written exactly once
// per successful dispatch run.
type UsageEvent struct {
	ID              string    `json:"id"`
	SubscriberEmail string    `json:"subscriber_email"`
	Provider        string    `json:"provider"`
	Model           string    `json:"model"`
	InputTokens     int64     `json:"input_tokens"`
	OutputTokens    int64     `json:"output_tokens"`
	CostUSD         float64   `json:"cost_usd"`
	CreatedAt       time.Time `json:"created_at"`
}

// ErrorEvent records a failed dispatch run. It is the only diagnostic a
// silent failure leaves behind.
type ErrorEvent struct {
	ID              string    `json:"id"`
	SubscriberEmail string    `json:"subscriber_email"`
	Stage           string    `json:"stage"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}
