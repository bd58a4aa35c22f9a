package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"search-srv/internal/analytics"
	kafkaDelivery "search-srv/internal/analytics/delivery/kafka"
)

// handleSearchEventMessage decodes one broker message and hands it to
// the usecase for persistence.
func (c *Consumer) handleSearchEventMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event kafkaDelivery.SearchEventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal search event message: %w", err)
	}

	if event.ID == "" || event.Type == "" {
		return fmt.Errorf("search event message missing id or type")
	}

	return c.uc.SaveEvent(ctx, analytics.Event{
		ID:          event.ID,
		Type:        event.Type,
		Query:       event.Query,
		ResultCount: event.ResultCount,
		Filters:     event.Filters,
		Timestamp:   event.Timestamp,
	})
}
