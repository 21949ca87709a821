// Package synthesis_gateway turns a day's content items into one briefing.
// It owns prompt construction and the parsing of the model's structured
// reply; the raw provider calls live in the synthesis driver.
package synthesis_gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/driver/synthesis_driver"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

const systemPrompt = `You are the writer of a short personal morning briefing.
You receive a list of items collected from the reader's own sources.
Write a single flowing narrative that connects the day's items, most important first.
Reply with a JSON object only, in this exact shape:
{"subject": "...", "narrative": "...", "top_stories": [{"title": "...", "link": "...", "source": "..."}]}
Pick at most five top stories. Use only links that appear in the input.`

// LLMClient is the raw completion call, satisfied by the synthesis driver.
type LLMClient interface {
	Complete(ctx context.Context, provider string, req synthesis_driver.CompletionRequest) (*synthesis_driver.CompletionResult, error)
}

type SynthesisGateway struct {
	client   LLMClient
	maxItems int
}

func NewSynthesisGateway(client LLMClient, maxItems int) *SynthesisGateway {
	return &SynthesisGateway{client: client, maxItems: maxItems}
}

type briefingReply struct {
	Subject    string `json:"subject"`
	Narrative  string `json:"narrative"`
	TopStories []struct {
		Title  string `json:"title"`
		Link   string `json:"link"`
		Source string `json:"source"`
	} `json:"top_stories"`
}

func (g *SynthesisGateway) Synthesize(ctx context.Context, items []domain.ContentItem, provider string) (*domain.Briefing, error) {
	if len(items) == 0 {
		return nil, errors.SynthesisError("no items to synthesize", nil, nil)
	}
	if g.maxItems > 0 && len(items) > g.maxItems {
		items = items[:g.maxItems]
	}

	result, err := g.client.Complete(ctx, provider, synthesis_driver.CompletionRequest{
		System: systemPrompt,
		User:   renderItems(items),
	})
	if err != nil {
		return nil, errors.SynthesisError("completion failed", err, map[string]interface{}{"provider": provider})
	}

	reply, err := parseReply(result.Text)
	if err != nil {
		logger.Logger.Error("model reply was not valid briefing JSON", "error", err)
		return nil, errors.SynthesisError("unparseable model reply", err, nil)
	}

	briefing := &domain.Briefing{
		Subject:     reply.Subject,
		Narrative:   reply.Narrative,
		GeneratedAt: time.Now(),
		TokenUsage: domain.TokenUsage{
			InputTokens:  result.InputTokens,
			OutputTokens: result.OutputTokens,
			Provider:     result.Provider,
			Model:        result.Model,
		},
	}
	for _, story := range reply.TopStories {
		briefing.TopStories = append(briefing.TopStories, domain.TopStory{
			Title:      story.Title,
			Link:       story.Link,
			SourceName: story.Source,
		})
	}

	return briefing, nil
}

// renderItems lays the items out grouped by source kind so the model sees
// the reader's own structure.
func renderItems(items []domain.ContentItem) string {
	grouped := domain.GroupBySourceType(items)
	kinds := make([]domain.SourceType, 0, len(grouped))
	for kind := range grouped {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var b strings.Builder
	b.WriteString("Today's items:\n")

	for _, sourceType := range kinds {
		fmt.Fprintf(&b, "\n## %s\n", sourceType)
		for _, item := range grouped[sourceType] {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", item.Title, item.SourceName, item.Link)
			if item.Description != "" {
				fmt.Fprintf(&b, "  %s\n", item.Description)
			}
		}
	}

	return b.String()
}

// parseReply tolerates a reply wrapped in a markdown code fence, which
// some models emit despite instructions.
func parseReply(text string) (*briefingReply, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}

	var reply briefingReply
	if err := json.Unmarshal([]byte(trimmed), &reply); err != nil {
		return nil, err
	}
	if reply.Narrative == "" {
		return nil, fmt.Errorf("reply has no narrative")
	}

	return &reply, nil
}
