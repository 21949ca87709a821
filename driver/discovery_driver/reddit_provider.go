package discovery_driver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

const redditSearchEndpoint = "https://www.reddit.com/subreddits/search.json"

// RedditProvider searches subreddits. Every subreddit has a native .rss
// rendering, so each hit is feed-backed by construction.
type RedditProvider struct {
	http           *httpJSONClient
	searchEndpoint string
	limit          int
}

func NewRedditProvider(cfg *config.Config) *RedditProvider {
	return &RedditProvider{
		http:           newHTTPJSONClient(cfg),
		searchEndpoint: redditSearchEndpoint,
		limit:          cfg.Discovery.ResultsPerKind,
	}
}

func (p *RedditProvider) Kind() domain.SourceType { return domain.SourceTypeReddit }

type redditSearchResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				DisplayName       string `json:"display_name"`
				Title             string `json:"title"`
				PublicDescription string `json:"public_description"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (p *RedditProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s?limit=%d&q=%s", p.searchEndpoint, p.limit, url.QueryEscape(query))

	var decoded redditSearchResponse
	if err := p.http.getJSON(ctx, endpoint, &decoded); err != nil {
		logger.Logger.Warn("reddit search failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(decoded.Data.Children))
	for _, child := range decoded.Data.Children {
		name := child.Data.DisplayName
		if name == "" {
			continue
		}
		title := child.Data.Title
		if title == "" {
			title = "r/" + name
		}
		results = append(results, domain.SearchResult{
			Title:        title,
			Description:  strings.TrimSpace(child.Data.PublicDescription),
			URL:          "https://www.reddit.com/r/" + name,
			FeedEndpoint: "https://www.reddit.com/r/" + name + "/.rss",
			Type:         domain.SourceTypeReddit,
		})
	}

	return capResults(results, p.limit), nil
}
