// Package feed_fetch_gateway turns one configured source into content
// items. It owns the mapping from raw feed entries to the normalized item
// shape the aggregator consumes: HTML is stripped from descriptions and
// publish dates are parsed with a lenient fallback.
package feed_fetch_gateway

import (
	"context"
	"strings"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/metrics"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

const maxDescriptionLen = 500

// FeedClient is the network half of fetching, satisfied by the feed fetch
// driver.
type FeedClient interface {
	FetchFeed(ctx context.Context, endpoint string) (*gofeed.Feed, error)
	DiscoverFeedEndpoint(ctx context.Context, pageURL string) (string, error)
}

type FeedFetchGateway struct {
	client    FeedClient
	sanitizer *bluemonday.Policy
}

func NewFeedFetchGateway(client FeedClient) *FeedFetchGateway {
	return &FeedFetchGateway{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Fetch retrieves one source's items. Webpage sources go through feed
// discovery first because their configured endpoint is an HTML page, not
// a feed.
func (g *FeedFetchGateway) Fetch(ctx context.Context, source domain.Source) ([]domain.ContentItem, error) {
	start := time.Now()

	items, err := g.fetch(ctx, source)
	metrics.ObserveFetch(string(source.Type), start, err)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (g *FeedFetchGateway) fetch(ctx context.Context, source domain.Source) ([]domain.ContentItem, error) {
	endpoint := source.FeedEndpoint
	if source.Type == domain.SourceTypeWebpage {
		discovered, err := g.client.DiscoverFeedEndpoint(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		endpoint = discovered
	}

	feed, err := g.client.FetchFeed(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		publishedAt, ok := g.publishedAt(entry, source)
		if !ok {
			continue
		}
		items = append(items, domain.ContentItem{
			Title:       title,
			Description: g.cleanDescription(entry.Description),
			Link:        entry.Link,
			PublishedAt: publishedAt,
			SourceName:  source.Name,
			SourceType:  source.Type,
		})
	}

	return items, nil
}

func (g *FeedFetchGateway) cleanDescription(raw string) string {
	clean := strings.TrimSpace(g.sanitizer.Sanitize(raw))
	runes := []rune(clean)
	if len(runes) > maxDescriptionLen {
		clean = string(runes[:maxDescriptionLen]) + "..."
	}
	return clean
}

// publishedAt prefers the parser's timestamp, then a lenient parse of the
// raw date string. An entry that carries a date we cannot parse is
// dropped (ok=false): a malformed date must not pass for a fresh one.
// Only entries with no date at all get the fetch time.
func (g *FeedFetchGateway) publishedAt(entry *gofeed.Item, source domain.Source) (time.Time, bool) {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed, true
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed, true
	}
	if entry.Published != "" {
		parsed, err := dateparse.ParseAny(entry.Published)
		if err != nil {
			logger.Logger.Warn("dropping entry with unparseable publish date",
				"source", source.Name, "title", entry.Title, "raw", entry.Published)
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Now(), true
}
