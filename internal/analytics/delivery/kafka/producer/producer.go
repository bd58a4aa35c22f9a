package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"search-srv/internal/analytics"
	kafkaDelivery "search-srv/internal/analytics/delivery/kafka"
)

// PublishSearchEvent publishes one analytics event
func (p *implProducer) PublishSearchEvent(ctx context.Context, event analytics.Event) error {
	// Convert to message DTO
	msg := kafkaDelivery.SearchEventMessage{
		ID:          event.ID,
		Type:        event.Type,
		Query:       event.Query,
		ResultCount: event.ResultCount,
		Filters:     event.Filters,
		Timestamp:   event.Timestamp,
	}

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal search event: %w", err)
	}

	// Publish to Kafka
	key := []byte(event.ID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish search event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s event %s", event.Type, event.ID)
	return nil
}
