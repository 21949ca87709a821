package discovery_driver

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"golang.org/x/sync/errgroup"
)

const blueskySearchEndpoint = "https://public.api.bsky.app/xrpc/app.bsky.actor.searchActors"

// SocialProvider searches social accounts. Bluesky actors carry a native
// profile feed; for bare handles the mirror bridge is raced as well, so a
// handle that only exists on the bridged network still resolves.
type SocialProvider struct {
	http           *httpJSONClient
	bridge         *feedBridge
	searchEndpoint string
	limit          int
}

func NewSocialProvider(cfg *config.Config) *SocialProvider {
	return &SocialProvider{
		http:           newHTTPJSONClient(cfg),
		bridge:         newFeedBridge(cfg.Discovery.BridgeHosts, cfg.Discovery.BridgeTimeout),
		searchEndpoint: blueskySearchEndpoint,
		limit:          cfg.Discovery.ResultsPerKind,
	}
}

func (p *SocialProvider) Kind() domain.SourceType { return domain.SourceTypeSocial }

type blueskySearchResponse struct {
	Actors []struct {
		Handle      string `json:"handle"`
		DisplayName string `json:"displayName"`
		Description string `json:"description"`
	} `json:"actors"`
}

// Search fans out the actor search and the bridge probe at the same
// time; neither lookup waits on the other and either may come back
// empty. Actor results are listed before the bridge result.
func (p *SocialProvider) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	var (
		actorResults []domain.SearchResult
		bridgeResult *domain.SearchResult
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		endpoint := fmt.Sprintf("%s?limit=%d&q=%s", p.searchEndpoint, p.limit, url.QueryEscape(query))

		var decoded blueskySearchResponse
		if err := p.http.getJSON(groupCtx, endpoint, &decoded); err != nil {
			logger.Logger.Warn("social actor search failed", "query", query, "error", err)
			return nil
		}
		for _, actor := range decoded.Actors {
			if actor.Handle == "" {
				continue
			}
			title := actor.DisplayName
			if title == "" {
				title = actor.Handle
			}
			actorResults = append(actorResults, domain.SearchResult{
				Title:        title,
				Description:  strings.TrimSpace(actor.Description),
				URL:          "https://bsky.app/profile/" + actor.Handle,
				FeedEndpoint: "https://bsky.app/profile/" + actor.Handle + "/rss",
				Type:         domain.SourceTypeSocial,
			})
		}
		return nil
	})

	// A query that looks like one handle also gets a shot at the bridge.
	if handle, ok := asHandle(query); ok {
		group.Go(func() error {
			feed, err := p.bridge.resolve(groupCtx, handle)
			if err != nil {
				return nil
			}
			bridgeResult = &domain.SearchResult{
				Title:        feed.title,
				Description:  "via " + feed.host,
				URL:          "https://" + feed.host + "/" + handle,
				FeedEndpoint: feed.endpoint,
				Type:         domain.SourceTypeSocial,
			}
			return nil
		})
	}

	// Tasks never return errors; Wait only synchronizes.
	_ = group.Wait()

	results := actorResults
	if bridgeResult != nil {
		results = append(results, *bridgeResult)
	}
	return capResults(results, p.limit), nil
}

// asHandle reports whether the query is plausibly a single account handle.
func asHandle(query string) (string, bool) {
	handle := strings.TrimPrefix(strings.TrimSpace(query), "@")
	if handle == "" || strings.ContainsAny(handle, " \t/") {
		return "", false
	}
	return handle, true
}
