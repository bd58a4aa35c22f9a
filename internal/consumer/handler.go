package consumer

import (
	"context"
	"fmt"

	analyticsConsumer "search-srv/internal/analytics/delivery/kafka/consumer"
	analyticsPostgre "search-srv/internal/analytics/repository/postgre"
	analyticsUsecase "search-srv/internal/analytics/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	analyticsConsumer *analyticsConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	eventRepo := analyticsPostgre.New(srv.postgresDB, srv.l)

	// No producer: this process only persists and aggregates events.
	analyticsUC := analyticsUsecase.New(eventRepo, nil, srv.l)

	analyticsCons, err := analyticsConsumer.New(analyticsConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     analyticsUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "Analytics domain initialized")

	return &domainConsumers{
		analyticsConsumer: analyticsCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.analyticsConsumer.ConsumeSearchEvents(ctx); err != nil {
		return fmt.Errorf("failed to start analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analyticsConsumer != nil {
		if err := consumers.analyticsConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analytics consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
