package synthesis_gateway

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/synthesis_driver"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLMClient struct {
	gotProvider string
	gotReq      synthesis_driver.CompletionRequest
	result      *synthesis_driver.CompletionResult
	err         error
}

func (f *fakeLLMClient) Complete(_ context.Context, provider string, req synthesis_driver.CompletionRequest) (*synthesis_driver.CompletionResult, error) {
	f.gotProvider = provider
	f.gotReq = req
	return f.result, f.err
}

func sampleItems() []domain.ContentItem {
	return []domain.ContentItem{
		{Title: "Model release", Link: "https://example.com/1", SourceName: "AI Letter", SourceType: domain.SourceTypeSubstack, Description: "Short note"},
		{Title: "New video", Link: "https://youtube.com/v/1", SourceName: "Channel", SourceType: domain.SourceTypeYouTube},
	}
}

func TestSynthesize(t *testing.T) {
	logger.InitLogger()

	client := &fakeLLMClient{result: &synthesis_driver.CompletionResult{
		Text: `{"subject": "Your Monday briefing", "narrative": "Quiet day.",
			"top_stories": [{"title": "Model release", "link": "https://example.com/1", "source": "AI Letter"}]}`,
		InputTokens:  800,
		OutputTokens: 300,
		Provider:     "openai",
		Model:        "gpt-4o-mini",
	}}

	gw := NewSynthesisGateway(client, 40)
	before := time.Now()
	briefing, err := gw.Synthesize(context.Background(), sampleItems(), "openai")

	require.NoError(t, err)
	assert.Equal(t, "openai", client.gotProvider)
	assert.Contains(t, client.gotReq.User, "Model release")
	assert.Contains(t, client.gotReq.User, "## substack")
	assert.Contains(t, client.gotReq.User, "## youtube")

	assert.Equal(t, "Your Monday briefing", briefing.Subject)
	assert.Equal(t, "Quiet day.", briefing.Narrative)
	require.Len(t, briefing.TopStories, 1)
	assert.Equal(t, "AI Letter", briefing.TopStories[0].SourceName)
	assert.Equal(t, int64(800), briefing.TokenUsage.InputTokens)
	assert.Equal(t, int64(300), briefing.TokenUsage.OutputTokens)
	assert.Equal(t, "gpt-4o-mini", briefing.TokenUsage.Model)
	assert.False(t, briefing.GeneratedAt.Before(before))
}

func TestSynthesize_CapsItems(t *testing.T) {
	logger.InitLogger()

	items := make([]domain.ContentItem, 10)
	for i := range items {
		items[i] = domain.ContentItem{Title: "x", SourceType: domain.SourceTypeRSS, SourceName: "Blog"}
	}

	client := &fakeLLMClient{result: &synthesis_driver.CompletionResult{
		Text: `{"subject": "s", "narrative": "n"}`,
	}}

	gw := NewSynthesisGateway(client, 3)
	_, err := gw.Synthesize(context.Background(), items, "openai")

	require.NoError(t, err)
	// Three item lines, not ten.
	assert.Equal(t, 3, strings.Count(client.gotReq.User, "- x"))
}

func TestSynthesize_NoItems(t *testing.T) {
	gw := NewSynthesisGateway(&fakeLLMClient{}, 40)
	_, err := gw.Synthesize(context.Background(), nil, "openai")
	require.Error(t, err)
}

func TestParseReply_CodeFence(t *testing.T) {
	reply, err := parseReply("```json\n{\"subject\": \"s\", \"narrative\": \"n\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "n", reply.Narrative)
}

func TestParseReply_MissingNarrative(t *testing.T) {
	_, err := parseReply(`{"subject": "s"}`)
	require.Error(t, err)
}
