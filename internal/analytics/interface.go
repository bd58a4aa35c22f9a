package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// TrackSearch and TrackSuggestionClick publish fire-and-forget
	// events; callers log failures and continue.
	TrackSearch(ctx context.Context, input TrackSearchInput) error
	TrackSuggestionClick(ctx context.Context, input TrackSuggestionClickInput) error

	// SaveEvent persists one consumed event into the event log.
	SaveEvent(ctx context.Context, event Event) error

	GetPopularSearches(ctx context.Context, input GetPopularSearchesInput) ([]PopularSearch, error)
	GetStatistics(ctx context.Context, input GetStatisticsInput) (Statistics, error)
}

//go:generate mockery --name Producer
type Producer interface {
	PublishSearchEvent(ctx context.Context, event Event) error
}
