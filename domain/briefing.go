package domain

import "time"

// TokenUsage reports what a synthesis call consumed.
type TokenUsage struct {
	InputTokens  int64  `json:"input_tokens"`
	OutputTokens int64  `json:"output_tokens"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
}

// TopStory is a headline picked out of the synthesized narrative.
type TopStory struct {
	Title      string `json:"title"`
	Link       string `json:"link"`
	SourceName string `json:"source_name"`
}

// Briefing is one synthesized digest. It is persisted twice: overwritten
// as the subscriber's latest briefing and upserted into the dated archive
// (at most one entry per subscriber per calendar date).
type Briefing struct {
	Subject     string     `json:"subject"`
	Narrative   string     `json:"narrative"`
	TopStories  []TopStory `json:"top_stories"`
	GeneratedAt time.Time  `json:"generated_at"`
	TokenUsage  TokenUsage `json:"token_usage"`
}
