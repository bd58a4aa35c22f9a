package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

func validateConsumerConfig(cfg ConsumerConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.GroupID == "" {
		return fmt.Errorf("kafka: group ID is required")
	}
	return nil
}

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	config := sarama.NewConfig()
	config.Version = KafkaVersion
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}
	return &consumerImpl{group: group}, nil
}

// ConsumeWithContext joins the consumer group and dispatches messages to the
// handler. Blocks until the context is cancelled or the session ends.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.group.Consume(ctx, topics, handler)
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	if c.group != nil {
		return c.group.Close()
	}
	return nil
}

// Errors returns the consumer group error channel.
func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}
