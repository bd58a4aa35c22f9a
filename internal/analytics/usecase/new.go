package usecase

import (
	"search-srv/internal/analytics"
	"search-srv/internal/analytics/repository"
	"search-srv/pkg/log"
)

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo     repository.EventRepository
	producer analytics.Producer
	l        log.Logger
}

// New - Factory function. producer may be nil in the consumer
// process, which only persists and aggregates events.
func New(
	repo repository.EventRepository,
	producer analytics.Producer,
	l log.Logger,
) analytics.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}
