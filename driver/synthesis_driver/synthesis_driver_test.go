package synthesis_driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(openAIURL, anthropicURL string) *SynthesisDriver {
	logger.InitLogger()
	return &SynthesisDriver{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cfg: config.SynthesisConfig{
			OpenAIAPIKey:    "test-openai-key",
			OpenAIModel:     "gpt-4o-mini",
			AnthropicAPIKey: "test-anthropic-key",
			AnthropicModel:  "claude-3-5-haiku-latest",
			DefaultProvider: "openai",
		},
		openAIEndpoint:    openAIURL,
		anthropicEndpoint: anthropicURL,
	}
}

func TestComplete_OpenAI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))

		var req openAIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"narrative\": \"hello\"}"}}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 48}
		}`))
	}))
	defer server.Close()

	driver := newTestDriver(server.URL, "")
	result, err := driver.Complete(context.Background(), "openai", CompletionRequest{
		System: "You summarize.",
		User:   "Items here.",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"narrative": "hello"}`, result.Text)
	assert.Equal(t, int64(120), result.InputTokens)
	assert.Equal(t, int64(48), result.OutputTokens)
	assert.Equal(t, "openai", result.Provider)
	assert.Equal(t, "gpt-4o-mini", result.Model)
}

func TestComplete_Anthropic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-anthropic-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"type": "text", "text": "narrative text"}],
			"usage": {"input_tokens": 200, "output_tokens": 90}
		}`))
	}))
	defer server.Close()

	driver := newTestDriver("", server.URL)
	result, err := driver.Complete(context.Background(), "anthropic", CompletionRequest{User: "Items here."})

	require.NoError(t, err)
	assert.Equal(t, "narrative text", result.Text)
	assert.Equal(t, int64(200), result.InputTokens)
	assert.Equal(t, int64(90), result.OutputTokens)
	assert.Equal(t, "anthropic", result.Provider)
}

func TestComplete_UnknownProviderFallsBackToDefault(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "ok"}}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1}
		}`))
	}))
	defer server.Close()

	driver := newTestDriver(server.URL, "")
	_, err := driver.Complete(context.Background(), "grok", CompletionRequest{User: "x"})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestComplete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	driver := newTestDriver(server.URL, "")
	_, err := driver.Complete(context.Background(), "openai", CompletionRequest{User: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
