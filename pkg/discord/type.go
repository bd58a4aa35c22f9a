package discord

import (
	"net/http"
	"time"

	"search-srv/pkg/log"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultUsername = "search-srv"

	colorError = 0xE74C3C
)

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	client  *http.Client
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to the Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
