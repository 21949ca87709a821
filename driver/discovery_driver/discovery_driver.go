// Package discovery_driver implements the per-network search adapters
// behind discovery. Each adapter speaks one public search API and maps its
// hits onto feed-backed search results.
package discovery_driver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

const discoveryUserAgent = "briefing-bot/1.0 (+https://github.com/heyybhargav/personal-newsletter-sub000)"

type httpJSONClient struct {
	client *http.Client
}

func newHTTPJSONClient(cfg *config.Config) *httpJSONClient {
	return &httpJSONClient{
		client: &http.Client{Timeout: cfg.Discovery.ProviderTimeout},
	}
}

// getJSON performs one GET and decodes the JSON body into out.
func (c *httpJSONClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", discoveryUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func capResults(results []domain.SearchResult, limit int) []domain.SearchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
