// Package feed_fetch_driver performs the actual network fetch and parse of
// one feed endpoint. Webpage sources get a feed-discovery pass first: the
// page's <link rel="alternate"> tags are inspected for a syndication feed.
package feed_fetch_driver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/rate_limiter"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const userAgent = "briefing-bot/1.0 (+https://github.com/heyybhargav/personal-newsletter-sub000)"

type FeedFetchDriver struct {
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
	timeout     time.Duration
}

func NewFeedFetchDriver(cfg *config.Config, limiter *rate_limiter.HostRateLimiter) *FeedFetchDriver {
	return &FeedFetchDriver{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.ClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.HTTP.DialTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
				IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
			},
		},
		rateLimiter: limiter,
		timeout:     cfg.HTTP.FeedFetchTimeout,
	}
}

// FetchFeed downloads and parses one feed endpoint. The per-source timeout
// bounds the whole operation so one slow host cannot stall a fan-out slot.
func (d *FeedFetchDriver) FetchFeed(ctx context.Context, endpoint string) (*gofeed.Feed, error) {
	if d.rateLimiter != nil {
		if err := d.rateLimiter.WaitForHost(ctx, endpoint); err != nil {
			return nil, fmt.Errorf("rate limiting failed: %w", err)
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = d.httpClient
	parser.UserAgent = userAgent

	feed, err := parser.ParseURLWithContext(endpoint, fetchCtx)
	if err != nil {
		logger.Logger.Warn("error parsing feed", "endpoint", endpoint, "error", err)
		return nil, err
	}

	return feed, nil
}

// DiscoverFeedEndpoint fetches an HTML page and returns the first
// syndication feed advertised in its <head>. Used for sources the resolver
// classified as plain web pages.
func (d *FeedFetchDriver) DiscoverFeedEndpoint(ctx context.Context, pageURL string) (string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	var feedHref string
	doc.Find(`link[rel="alternate"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		linkType, _ := s.Attr("type")
		if !strings.Contains(linkType, "rss") && !strings.Contains(linkType, "atom") && !strings.Contains(linkType, "xml") {
			return true
		}
		if href, ok := s.Attr("href"); ok && href != "" {
			feedHref = href
			return false
		}
		return true
	})

	if feedHref == "" {
		return "", errors.ErrNoFeedDiscovered
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	resolved, err := base.Parse(feedHref)
	if err != nil {
		return "", fmt.Errorf("failed to resolve feed href %q: %w", feedHref, err)
	}

	return resolved.String(), nil
}
