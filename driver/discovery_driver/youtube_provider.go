package discovery_driver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

const youtubeSearchEndpoint = "https://www.googleapis.com/youtube/v3/search"

// YouTubeProvider searches channels via the Data API. Without an API key
// it contributes an empty bucket.
type YouTubeProvider struct {
	http           *httpJSONClient
	searchEndpoint string
	apiKey         string
	limit          int
}

func NewYouTubeProvider(cfg *config.Config) *YouTubeProvider {
	return &YouTubeProvider{
		http:           newHTTPJSONClient(cfg),
		searchEndpoint: youtubeSearchEndpoint,
		apiKey:         cfg.Discovery.YouTubeAPIKey,
		limit:          cfg.Discovery.ResultsPerKind,
	}
}

func (p *YouTubeProvider) Kind() domain.SourceType { return domain.SourceTypeYouTube }

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

func (p *YouTubeProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if p.apiKey == "" {
		logger.Logger.Debug("youtube search skipped, no api key configured")
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s?part=snippet&type=channel&maxResults=%d&q=%s&key=%s",
		p.searchEndpoint, p.limit, url.QueryEscape(query), url.QueryEscape(p.apiKey))

	var decoded youtubeSearchResponse
	if err := p.http.getJSON(ctx, endpoint, &decoded); err != nil {
		logger.Logger.Warn("youtube search failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		if item.ID.ChannelID == "" {
			continue
		}
		results = append(results, domain.SearchResult{
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			URL:          "https://www.youtube.com/channel/" + item.ID.ChannelID,
			FeedEndpoint: "https://www.youtube.com/feeds/videos.xml?channel_id=" + item.ID.ChannelID,
			Type:         domain.SourceTypeYouTube,
		})
	}

	return capResults(results, p.limit), nil
}
