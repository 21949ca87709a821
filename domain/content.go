package domain

import (
	"strings"
	"time"
)

// ContentItem is one normalized article, video, or post pulled from a
// source. Items are ephemeral: they exist only for the duration of one
// aggregation run and are never persisted individually.
type ContentItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	PublishedAt time.Time  `json:"published_at"`
	SourceName  string     `json:"source_name"`
	SourceType  SourceType `json:"source_type"`
}

// AggregationWindow bounds how far back an aggregation run looks.
type AggregationWindow struct {
	LookbackDays int
}

// Cutoff returns the exclusive lower bound for item publish times.
func (w AggregationWindow) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -w.LookbackDays)
}

// NormalizedTitle is the deduplication key for content items: case-folded
// and trimmed. Deliberately coarse: items from different sources carrying
// the same headline collapse into one, and no secondary key (link, source)
// is consulted.
func NormalizedTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// GroupBySourceType reshapes items into per-type buckets, preserving each
// type's relative order. Used by the multi-section synthesis path.
func GroupBySourceType(items []ContentItem) map[SourceType][]ContentItem {
	grouped := make(map[SourceType][]ContentItem)
	for _, item := range items {
		grouped[item.SourceType] = append(grouped[item.SourceType], item)
	}
	return grouped
}
