package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type searchEventsHandler struct {
	consumer *Consumer
}

func (h *searchEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *searchEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *searchEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleSearchEventMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "analytics.delivery.kafka.consumer.ConsumeSearchEvents: Failed to process event message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
