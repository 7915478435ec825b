package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// WebhookService posts magic-link notifications to an external automation
// endpoint. The endpoint is fixed per deployment; there is no retry, the
// caller decides whether a failed delivery matters.
type WebhookService struct {
	url    string
	client *http.Client
}

// NewWebhookService creates a webhook service. An empty URL disables
// delivery; Send then logs and reports success.
func NewWebhookService(url string) *WebhookService {
	return &WebhookService{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type magicLinkPayload struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// SendMagicLink delivers {email, link} to the configured endpoint. Any
// non-2xx response is a failure.
func (s *WebhookService) SendMagicLink(ctx context.Context, email, link string) error {
	if s.url == "" {
		log.Printf("⚠️  Magic link webhook not configured, skipping delivery for %s", email)
		return nil
	}

	body, err := json.Marshal(magicLinkPayload{Email: email, Link: link})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
