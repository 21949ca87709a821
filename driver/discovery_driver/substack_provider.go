package discovery_driver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

const substackSearchEndpoint = "https://substack.com/api/v1/publication/search"

// SubstackProvider searches the publication directory. Every hit maps to
// the publication's /feed endpoint.
type SubstackProvider struct {
	http           *httpJSONClient
	searchEndpoint string
	limit          int
}

func NewSubstackProvider(cfg *config.Config) *SubstackProvider {
	return &SubstackProvider{
		http:           newHTTPJSONClient(cfg),
		searchEndpoint: substackSearchEndpoint,
		limit:          cfg.Discovery.ResultsPerKind,
	}
}

func (p *SubstackProvider) Kind() domain.SourceType { return domain.SourceTypeSubstack }

type substackSearchResponse struct {
	Results []struct {
		Name         string `json:"name"`
		Description  string `json:"hero_text"`
		Subdomain    string `json:"subdomain"`
		CustomDomain string `json:"custom_domain"`
		BaseURL      string `json:"base_url"`
	} `json:"results"`
}

func (p *SubstackProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s?query=%s&page=0", p.searchEndpoint, url.QueryEscape(query))

	var decoded substackSearchResponse
	if err := p.http.getJSON(ctx, endpoint, &decoded); err != nil {
		logger.Logger.Warn("substack search failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(decoded.Results))
	for _, hit := range decoded.Results {
		baseURL := hit.BaseURL
		if baseURL == "" {
			if hit.CustomDomain != "" {
				baseURL = "https://" + hit.CustomDomain
			} else if hit.Subdomain != "" {
				baseURL = "https://" + hit.Subdomain + ".substack.com"
			} else {
				continue
			}
		}
		results = append(results, domain.SearchResult{
			Title:        hit.Name,
			Description:  hit.Description,
			URL:          baseURL,
			FeedEndpoint: baseURL + "/feed",
			Type:         domain.SourceTypeSubstack,
		})
	}

	return capResults(results, p.limit), nil
}
