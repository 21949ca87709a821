// Package delivery_driver speaks the outbound email provider's HTTP API.
// It sends fully rendered messages; composing subject and body is the
// gateway's job.
package delivery_driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/heyybhargav/personal-newsletter-sub000/config"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
)

type DeliveryDriver struct {
	httpClient *http.Client
	cfg        config.DeliveryConfig
}

func NewDeliveryDriver(cfg *config.Config) *DeliveryDriver {
	return &DeliveryDriver{
		httpClient: &http.Client{Timeout: cfg.Delivery.Timeout},
		cfg:        cfg.Delivery,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmail posts one message to the provider. Any non-2xx response is an
// error; the response body is included for diagnostics because provider
// error payloads carry the actual reason.
func (d *DeliveryDriver) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	payload := sendEmailRequest{
		From:    d.cfg.FromAddress,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.APIBase+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.cfg.APIKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Logger.Error("email provider returned non-2xx",
			"status", resp.StatusCode, "recipient", to, "detail", string(detail))
		return fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
