package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"search-srv/internal/analytics"
	"search-srv/internal/model"
)

// TrackSearch publishes a search event to the broker.
func (uc *implUseCase) TrackSearch(ctx context.Context, input analytics.TrackSearchInput) error {
	event := analytics.Event{
		ID:          uuid.NewString(),
		Type:        model.SearchEventTypeSearch,
		Query:       input.Query,
		ResultCount: input.ResultCount,
		Filters:     input.Filters,
		Timestamp:   time.Now().UTC(),
	}

	if err := uc.producer.PublishSearchEvent(ctx, event); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.TrackSearch: publish failed: %v", err)
		return fmt.Errorf("%w: %v", analytics.ErrPublishFailed, err)
	}
	return nil
}

// TrackSuggestionClick publishes a suggestion click event to the broker.
func (uc *implUseCase) TrackSuggestionClick(ctx context.Context, input analytics.TrackSuggestionClickInput) error {
	event := analytics.Event{
		ID:        uuid.NewString(),
		Type:      model.SearchEventTypeSuggestionClick,
		Query:     input.Suggestion,
		Timestamp: time.Now().UTC(),
	}

	if err := uc.producer.PublishSearchEvent(ctx, event); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.TrackSuggestionClick: publish failed: %v", err)
		return fmt.Errorf("%w: %v", analytics.ErrPublishFailed, err)
	}
	return nil
}
