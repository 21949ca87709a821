package discovery_driver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/mmcdole/gofeed"
)

// bridgeFeed is one mirror's answer for a handle.
type bridgeFeed struct {
	host     string
	endpoint string
	title    string
}

// feedBridge races a set of mirror hosts that expose the same upstream
// account as RSS. Mirrors are unreliable individually, so every host is
// probed concurrently and the first one that serves a parseable feed wins;
// the remaining probes are cancelled.
type feedBridge struct {
	httpClient *http.Client
	hosts      []string
	timeout    time.Duration
}

func newFeedBridge(hosts []string, timeout time.Duration) *feedBridge {
	return &feedBridge{
		httpClient: &http.Client{Timeout: timeout},
		hosts:      hosts,
		timeout:    timeout,
	}
}

// resolve returns the first mirror endpoint that serves a valid feed for
// the handle, or ErrNoFeedDiscovered when every mirror fails.
func (b *feedBridge) resolve(ctx context.Context, handle string) (*bridgeFeed, error) {
	if len(b.hosts) == 0 {
		return nil, errors.ErrNoFeedDiscovered
	}

	raceCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	found := make(chan *bridgeFeed, len(b.hosts))
	failed := make(chan struct{}, len(b.hosts))

	for _, host := range b.hosts {
		go func(host string) {
			feed, err := b.probe(raceCtx, host, handle)
			if err != nil {
				logger.Logger.Debug("bridge probe failed", "host", host, "handle", handle, "error", err)
				failed <- struct{}{}
				return
			}
			found <- feed
		}(host)
	}

	for remaining := len(b.hosts); remaining > 0; remaining-- {
		select {
		case feed := <-found:
			// First valid feed wins; cancelling drops the slower probes.
			cancel()
			return feed, nil
		case <-failed:
		case <-raceCtx.Done():
			return nil, errors.ErrNoFeedDiscovered
		}
	}

	return nil, errors.ErrNoFeedDiscovered
}

func (b *feedBridge) probe(ctx context.Context, host, handle string) (*bridgeFeed, error) {
	base := host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	endpoint := fmt.Sprintf("%s/%s/rss", base, handle)

	parser := gofeed.NewParser()
	parser.Client = b.httpClient
	parser.UserAgent = discoveryUserAgent

	feed, err := parser.ParseURLWithContext(endpoint, ctx)
	if err != nil {
		return nil, err
	}

	return &bridgeFeed{host: host, endpoint: endpoint, title: feed.Title}, nil
}
