package consumer

import (
	"fmt"

	"search-srv/config"
	"search-srv/internal/analytics"
	pkgKafka "search-srv/pkg/kafka"
	"search-srv/pkg/log"
)

// Config holds the configuration for the analytics consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     analytics.UseCase
}

// Consumer manages the Kafka consumer group for the analytics domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          analytics.UseCase

	searchEventsGroup pkgKafka.IConsumer
}

// New creates a new analytics consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.searchEventsGroup != nil {
		if err := c.searchEventsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close search events group: %w", err)
		}
	}
	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
