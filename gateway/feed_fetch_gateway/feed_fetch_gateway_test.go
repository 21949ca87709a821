package feed_fetch_gateway

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedClient struct {
	feed        *gofeed.Feed
	fetchErr    error
	discovered  string
	discoverErr error
	fetchedURL  string
	discoverURL string
}

func (f *fakeFeedClient) FetchFeed(_ context.Context, endpoint string) (*gofeed.Feed, error) {
	f.fetchedURL = endpoint
	return f.feed, f.fetchErr
}

func (f *fakeFeedClient) DiscoverFeedEndpoint(_ context.Context, pageURL string) (string, error) {
	f.discoverURL = pageURL
	return f.discovered, f.discoverErr
}

func TestFetch_MapsAndSanitizesItems(t *testing.T) {
	logger.InitLogger()
	published := time.Date(2025, time.June, 14, 12, 0, 0, 0, time.UTC)

	client := &fakeFeedClient{feed: &gofeed.Feed{Items: []*gofeed.Item{
		{
			Title:           "  Model release  ",
			Description:     `<p>Big <b>news</b><script>alert(1)</script></p>`,
			Link:            "https://example.com/1",
			PublishedParsed: &published,
		},
		{Title: "", Link: "https://example.com/skipped"},
		{Title: "No date entry", Published: "June 13, 2025"},
	}}}

	gw := NewFeedFetchGateway(client)
	items, err := gw.Fetch(context.Background(), domain.Source{
		Type:         domain.SourceTypeSubstack,
		Name:         "Example Letter",
		FeedEndpoint: "https://example.substack.com/feed",
	})

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Model release", items[0].Title)
	assert.Equal(t, "Big news", items[0].Description)
	assert.NotContains(t, items[0].Description, "script")
	assert.Equal(t, published, items[0].PublishedAt)
	assert.Equal(t, "Example Letter", items[0].SourceName)
	assert.Equal(t, domain.SourceTypeSubstack, items[0].SourceType)

	// Raw date string parsed by the fallback.
	assert.Equal(t, 2025, items[1].PublishedAt.Year())
	assert.Equal(t, time.June, items[1].PublishedAt.Month())
	assert.Equal(t, 13, items[1].PublishedAt.Day())
}

func TestFetch_TruncatesLongDescriptions(t *testing.T) {
	logger.InitLogger()

	client := &fakeFeedClient{feed: &gofeed.Feed{Items: []*gofeed.Item{
		{Title: "Long one", Description: strings.Repeat("a", 900)},
	}}}

	gw := NewFeedFetchGateway(client)
	items, err := gw.Fetch(context.Background(), domain.Source{Type: domain.SourceTypeRSS, Name: "Blog"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Len(t, items[0].Description, maxDescriptionLen+3)
	assert.True(t, strings.HasSuffix(items[0].Description, "..."))
}

func TestFetch_WebpageGoesThroughDiscovery(t *testing.T) {
	logger.InitLogger()

	client := &fakeFeedClient{
		discovered: "https://example.com/feed.xml",
		feed:       &gofeed.Feed{Items: []*gofeed.Item{{Title: "Post"}}},
	}

	gw := NewFeedFetchGateway(client)
	_, err := gw.Fetch(context.Background(), domain.Source{
		Type:         domain.SourceTypeWebpage,
		Name:         "Some Blog",
		FeedEndpoint: "https://example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", client.discoverURL)
	assert.Equal(t, "https://example.com/feed.xml", client.fetchedURL)
}

func TestFetch_UnparseableDateDropsEntry(t *testing.T) {
	logger.InitLogger()

	client := &fakeFeedClient{feed: &gofeed.Feed{Items: []*gofeed.Item{
		{Title: "Garbled", Published: "not a real date at all"},
		{Title: "Dated", Published: "June 13, 2025"},
	}}}

	gw := NewFeedFetchGateway(client)
	items, err := gw.Fetch(context.Background(), domain.Source{Type: domain.SourceTypeRSS, Name: "Blog"})

	require.NoError(t, err)

	// The garbled entry is gone: a date we cannot read must not be
	// stamped with the fetch instant and pass for fresh.
	require.Len(t, items, 1)
	assert.Equal(t, "Dated", items[0].Title)
}

func TestFetch_MissingDateDefaultsToNow(t *testing.T) {
	logger.InitLogger()

	client := &fakeFeedClient{feed: &gofeed.Feed{Items: []*gofeed.Item{
		{Title: "Dateless"},
	}}}

	gw := NewFeedFetchGateway(client)
	before := time.Now()
	items, err := gw.Fetch(context.Background(), domain.Source{Type: domain.SourceTypeRSS, Name: "Blog"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].PublishedAt.Before(before))
}
