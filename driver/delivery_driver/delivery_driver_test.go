package delivery_driver

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

func newTestDriver(apiBase string) *DeliveryDriver {
	logger.InitLogger()
	return &DeliveryDriver{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cfg: config.DeliveryConfig{
			APIBase:     apiBase,
			APIKey:      "test-delivery-key",
			FromAddress: "briefing@updates.example.com",
		},
	}
}

func TestSendEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-delivery-key", r.Header.Get("Authorization"))

		var req sendEmailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "briefing@updates.example.com", req.From)
		assert.Equal(t, []string{"reader@example.com"}, req.To)
		assert.Equal(t, "Your briefing", req.Subject)
		assert.Contains(t, req.HTML, "<html")

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "msg_1"}`))
	}))
	defer server.Close()

	driver := newTestDriver(server.URL)
	err := driver.SendEmail(context.Background(), "reader@example.com", "Your briefing", "<html><body>hi</body></html>")
	require.NoError(t, err)
}

func TestSendEmail_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "invalid recipient"}`))
	}))
	defer server.Close()

	driver := newTestDriver(server.URL)
	err := driver.SendEmail(context.Background(), "not-an-email", "Your briefing", "<p>hi</p>")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid recipient")
}
