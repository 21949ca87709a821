package discovery_driver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/mmcdole/gofeed"
)

const newsSearchEndpoint = "https://news.google.com/rss/search"

// RSSProvider covers the generic bucket: a keyword search feed over news
// sources. The search feed itself is the result, validated by parsing it
// once before it is offered.
type RSSProvider struct {
	httpClient     *http.Client
	searchEndpoint string
}

func NewRSSProvider(cfg *config.Config) *RSSProvider {
	return &RSSProvider{
		httpClient:     &http.Client{Timeout: cfg.Discovery.ProviderTimeout},
		searchEndpoint: newsSearchEndpoint,
	}
}

func (p *RSSProvider) Kind() domain.SourceType { return domain.SourceTypeRSS }

func (p *RSSProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s?q=%s&hl=en-US", p.searchEndpoint, url.QueryEscape(query))

	parser := gofeed.NewParser()
	parser.Client = p.httpClient
	parser.UserAgent = discoveryUserAgent

	feed, err := parser.ParseURLWithContext(endpoint, ctx)
	if err != nil {
		logger.Logger.Warn("news feed search failed", "query", query, "error", err)
		return nil, err
	}
	if len(feed.Items) == 0 {
		return nil, nil
	}

	return []domain.SearchResult{{
		Title:        fmt.Sprintf("News: %s", query),
		Description:  fmt.Sprintf("Rolling news coverage matching %q", query),
		URL:          feed.Link,
		FeedEndpoint: endpoint,
		Type:         domain.SourceTypeRSS,
	}}, nil
}
