package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SendMessage posts a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, WebhookPayload{
		Content:  content,
		Username: defaultUsername,
	})
}

// SendError posts an error embed. The wrapped error is appended to the
// description when present.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	if err != nil {
		description = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.post(ctx, WebhookPayload{
		Username: defaultUsername,
		Embeds: []Embed{
			{
				Title:       title,
				Description: description,
				Color:       colorError,
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
			},
		},
	})
}

// Close releases resources. The shared HTTP client needs no cleanup.
func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
