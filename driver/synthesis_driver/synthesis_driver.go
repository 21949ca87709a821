// Package synthesis_driver holds the raw LLM API clients. It speaks the
// provider wire formats and nothing else; prompt construction and briefing
// assembly live in the gateway layer.
package synthesis_driver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

const (
	openAIEndpoint    = "https://api.openai.com/v1/chat/completions"
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
)

// CompletionRequest is one provider-agnostic completion call.
type CompletionRequest struct {
	System    string
	User      string
	MaxTokens int
}

// CompletionResult carries the generated text together with the token
// counts the provider reported for this call.
type CompletionResult struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
	Provider     string
	Model        string
}

type SynthesisDriver struct {
	httpClient        *http.Client
	cfg               config.SynthesisConfig
	openAIEndpoint    string
	anthropicEndpoint string
}

func NewSynthesisDriver(cfg *config.Config) *SynthesisDriver {
	return &SynthesisDriver{
		httpClient:        &http.Client{Timeout: cfg.Synthesis.RequestTimeout},
		cfg:               cfg.Synthesis,
		openAIEndpoint:    openAIEndpoint,
		anthropicEndpoint: anthropicEndpoint,
	}
}

// Complete routes one completion call to the named provider. An unknown
// provider name falls back to the configured default rather than failing
// the run.
func (d *SynthesisDriver) Complete(ctx context.Context, provider string, req CompletionRequest) (*CompletionResult, error) {
	switch provider {
	case "openai":
		return d.completeOpenAI(ctx, req)
	case "anthropic":
		return d.completeAnthropic(ctx, req)
	default:
		logger.Logger.Warn("unknown synthesis provider, using default",
			"requested", provider, "default", d.cfg.DefaultProvider)
		if d.cfg.DefaultProvider == "anthropic" {
			return d.completeAnthropic(ctx, req)
		}
		return d.completeOpenAI(ctx, req)
	}
}

func (d *SynthesisDriver) decodeError(provider string, status int) error {
	return fmt.Errorf("%s returned status %d", provider, status)
}
