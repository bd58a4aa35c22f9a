package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"search-srv/internal/analytics"
	"search-srv/internal/model"
)

// SaveEvent persists one consumed event into the event log.
func (uc *implUseCase) SaveEvent(ctx context.Context, event analytics.Event) error {
	var filters []byte
	if len(event.Filters) > 0 {
		data, err := json.Marshal(event.Filters)
		if err != nil {
			uc.l.Warnf(ctx, "analytics.usecase.SaveEvent: dropping unmarshalable filters: %v", err)
		} else {
			filters = data
		}
	}

	createdAt := event.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := model.SearchEvent{
		ID:          event.ID,
		Type:        event.Type,
		Query:       event.Query,
		ResultCount: event.ResultCount,
		Filters:     filters,
		CreatedAt:   createdAt,
	}

	if err := uc.repo.InsertEvent(ctx, row); err != nil {
		return fmt.Errorf("%w: %v", analytics.ErrSaveFailed, err)
	}

	uc.l.Debugf(ctx, "analytics.usecase.SaveEvent: saved %s event %s", event.Type, event.ID)
	return nil
}
