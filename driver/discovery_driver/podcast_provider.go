package discovery_driver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

const podcastSearchEndpoint = "https://itunes.apple.com/search"

// PodcastProvider searches the iTunes directory, which exposes each show's
// raw feed URL directly.
type PodcastProvider struct {
	http           *httpJSONClient
	searchEndpoint string
	limit          int
}

func NewPodcastProvider(cfg *config.Config) *PodcastProvider {
	return &PodcastProvider{
		http:           newHTTPJSONClient(cfg),
		searchEndpoint: podcastSearchEndpoint,
		limit:          cfg.Discovery.ResultsPerKind,
	}
}

func (p *PodcastProvider) Kind() domain.SourceType { return domain.SourceTypePodcast }

type itunesSearchResponse struct {
	Results []struct {
		CollectionName string `json:"collectionName"`
		ArtistName     string `json:"artistName"`
		CollectionURL  string `json:"collectionViewUrl"`
		FeedURL        string `json:"feedUrl"`
	} `json:"results"`
}

func (p *PodcastProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s?media=podcast&limit=%d&term=%s", p.searchEndpoint, p.limit, url.QueryEscape(query))

	var decoded itunesSearchResponse
	if err := p.http.getJSON(ctx, endpoint, &decoded); err != nil {
		logger.Logger.Warn("podcast search failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(decoded.Results))
	for _, hit := range decoded.Results {
		if hit.FeedURL == "" {
			continue
		}
		results = append(results, domain.SearchResult{
			Title:        hit.CollectionName,
			Description:  "by " + hit.ArtistName,
			URL:          hit.CollectionURL,
			FeedEndpoint: hit.FeedURL,
			Type:         domain.SourceTypePodcast,
		})
	}

	return capResults(results, p.limit), nil
}
