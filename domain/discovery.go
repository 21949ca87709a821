package domain

// SearchResult is one discovery hit: a followable source candidate.
type SearchResult struct {
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	URL          string     `json:"url"`
	FeedEndpoint string     `json:"feed_endpoint,omitempty"`
	Type         SourceType `json:"type"`
}

// DiscoveryInterleaveOrder is the fixed bucket priority for round-robin
// result merging: newsletter hits lead the page, then social, then the
// remaining providers.
var DiscoveryInterleaveOrder = []SourceType{
	SourceTypeSubstack,
	SourceTypeSocial,
	SourceTypeYouTube,
	SourceTypePodcast,
	SourceTypeReddit,
	SourceTypeRSS,
}
