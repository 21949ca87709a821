package domain

import "time"

// SourceType classifies where a source's content comes from and which
// fetch strategy applies to it.
type SourceType string

const (
	SourceTypeYouTube    SourceType = "youtube"
	SourceTypeReddit     SourceType = "reddit"
	SourceTypeSubstack   SourceType = "substack"
	SourceTypeMedium     SourceType = "medium"
	SourceTypeHackerNews SourceType = "hackernews"
	SourceTypeGitHub     SourceType = "github"
	SourceTypePodcast    SourceType = "podcast"
	SourceTypeSocial     SourceType = "social"
	SourceTypeRSS        SourceType = "rss"
	// SourceTypeWebpage marks a URL that carried no recognizable feed shape;
	// feed discovery happens at fetch time, not at classification time.
	SourceTypeWebpage SourceType = "webpage"
)

// Confidence indicates how certain the resolver is about a detection.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Source is a subscriber-configured feed. Identity is immutable once
// created; only Enabled is toggled afterwards.
type Source struct {
	ID           string     `json:"id"`
	Type         SourceType `json:"type"`
	Name         string     `json:"name"`
	FeedEndpoint string     `json:"feed_endpoint"`
	OriginalURL  string     `json:"original_url"`
	Enabled      bool       `json:"enabled"`
	AddedAt      time.Time  `json:"added_at"`
}

// DetectedSource is the resolver's classification of a raw URL.
type DetectedSource struct {
	Type         SourceType `json:"type"`
	Name         string     `json:"name"`
	FeedEndpoint string     `json:"feed_endpoint"`
	Confidence   Confidence `json:"confidence"`
}
