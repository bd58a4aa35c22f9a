package consumer

import (
	"context"

	kafkaDelivery "search-srv/internal/analytics/delivery/kafka"
)

// ConsumeSearchEvents starts consuming analytics events
func (c *Consumer) ConsumeSearchEvents(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupSearchEvents)
	if err != nil {
		return err
	}
	c.searchEventsGroup = group

	handler := &searchEventsHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicSearchEvents}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicSearchEvents)

	return nil
}
