package repository

import (
	"context"
	"time"

	"search-srv/internal/model"
)

//go:generate mockery --name EventRepository
type EventRepository interface {
	InsertEvent(ctx context.Context, event model.SearchEvent) error
	PopularSearches(ctx context.Context, limit int) ([]model.PopularSearch, error)
	Statistics(ctx context.Context, since time.Time) (model.SearchStatistics, error)
}
