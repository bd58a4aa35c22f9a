package discord

import (
	"context"
	"errors"

	"search-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// IDiscord defines the interface for the Discord webhook notifier.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	Close() error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		client:  newHTTPClient(defaultTimeout),
	}, nil
}
