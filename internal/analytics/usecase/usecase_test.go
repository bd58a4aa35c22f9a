package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"search-srv/internal/analytics"
	"search-srv/internal/model"
	"search-srv/pkg/log"
)

type fakeEventRepo struct {
	inserted  []model.SearchEvent
	insertErr error

	popular    []model.PopularSearch
	popularErr error
	lastLimit  int

	stats     model.SearchStatistics
	statsErr  error
	lastSince time.Time
}

func (f *fakeEventRepo) InsertEvent(_ context.Context, event model.SearchEvent) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, event)
	return nil
}

func (f *fakeEventRepo) PopularSearches(_ context.Context, limit int) ([]model.PopularSearch, error) {
	f.lastLimit = limit
	if f.popularErr != nil {
		return nil, f.popularErr
	}
	return f.popular, nil
}

func (f *fakeEventRepo) Statistics(_ context.Context, since time.Time) (model.SearchStatistics, error) {
	f.lastSince = since
	if f.statsErr != nil {
		return model.SearchStatistics{}, f.statsErr
	}
	return f.stats, nil
}

type fakeProducer struct {
	published  []analytics.Event
	publishErr error
}

func (f *fakeProducer) PublishSearchEvent(_ context.Context, event analytics.Event) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, event)
	return nil
}

func TestTrackSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a search event", func(t *testing.T) {
		producer := &fakeProducer{}
		uc := New(&fakeEventRepo{}, producer, log.NewNoop())

		err := uc.TrackSearch(ctx, analytics.TrackSearchInput{
			Query:       "wireless mouse",
			ResultCount: 42,
			Filters:     map[string]interface{}{"category": "electronics"},
		})
		if err != nil {
			t.Fatalf("TrackSearch failed: %v", err)
		}

		if len(producer.published) != 1 {
			t.Fatalf("Expected 1 published event, got %d", len(producer.published))
		}
		event := producer.published[0]
		if event.ID == "" {
			t.Error("Event ID should be generated")
		}
		if event.Type != model.SearchEventTypeSearch {
			t.Errorf("Type mismatch: got %s, want %s", event.Type, model.SearchEventTypeSearch)
		}
		if event.Query != "wireless mouse" || event.ResultCount != 42 {
			t.Errorf("Event payload mismatch: %+v", event)
		}
		if event.Timestamp.IsZero() {
			t.Error("Timestamp should be set")
		}
	})

	t.Run("publish failure wraps ErrPublishFailed", func(t *testing.T) {
		producer := &fakeProducer{publishErr: errors.New("broker down")}
		uc := New(&fakeEventRepo{}, producer, log.NewNoop())

		err := uc.TrackSearch(ctx, analytics.TrackSearchInput{Query: "mouse"})
		if !errors.Is(err, analytics.ErrPublishFailed) {
			t.Errorf("Expected ErrPublishFailed, got %v", err)
		}
	})
}

func TestTrackSuggestionClick(t *testing.T) {
	ctx := context.Background()
	producer := &fakeProducer{}
	uc := New(&fakeEventRepo{}, producer, log.NewNoop())

	err := uc.TrackSuggestionClick(ctx, analytics.TrackSuggestionClickInput{Suggestion: "wireless mouse"})
	if err != nil {
		t.Fatalf("TrackSuggestionClick failed: %v", err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(producer.published))
	}
	event := producer.published[0]
	if event.Type != model.SearchEventTypeSuggestionClick {
		t.Errorf("Type mismatch: got %s, want %s", event.Type, model.SearchEventTypeSuggestionClick)
	}
	if event.Query != "wireless mouse" {
		t.Errorf("Query mismatch: got %q", event.Query)
	}
}

func TestSaveEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the event row", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := New(repo, nil, log.NewNoop())

		ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		err := uc.SaveEvent(ctx, analytics.Event{
			ID:          "evt-1",
			Type:        model.SearchEventTypeSearch,
			Query:       "wireless mouse",
			ResultCount: 7,
			Filters:     map[string]interface{}{"rating": 4.0},
			Timestamp:   ts,
		})
		if err != nil {
			t.Fatalf("SaveEvent failed: %v", err)
		}

		if len(repo.inserted) != 1 {
			t.Fatalf("Expected 1 inserted row, got %d", len(repo.inserted))
		}
		row := repo.inserted[0]
		if row.ID != "evt-1" || row.Query != "wireless mouse" || row.ResultCount != 7 {
			t.Errorf("Row mismatch: %+v", row)
		}
		if !row.CreatedAt.Equal(ts) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", row.CreatedAt, ts)
		}
		if len(row.Filters) == 0 {
			t.Error("Filters should be serialized")
		}
	})

	t.Run("zero timestamp defaults to now", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := New(repo, nil, log.NewNoop())

		before := time.Now().UTC()
		if err := uc.SaveEvent(ctx, analytics.Event{ID: "evt-2", Type: model.SearchEventTypeSearch}); err != nil {
			t.Fatalf("SaveEvent failed: %v", err)
		}
		if repo.inserted[0].CreatedAt.Before(before) {
			t.Errorf("CreatedAt should default to now, got %v", repo.inserted[0].CreatedAt)
		}
	})

	t.Run("insert failure wraps ErrSaveFailed", func(t *testing.T) {
		repo := &fakeEventRepo{insertErr: errors.New("constraint violation")}
		uc := New(repo, nil, log.NewNoop())

		err := uc.SaveEvent(ctx, analytics.Event{ID: "evt-3", Type: model.SearchEventTypeSearch})
		if !errors.Is(err, analytics.ErrSaveFailed) {
			t.Errorf("Expected ErrSaveFailed, got %v", err)
		}
	})
}

func TestGetPopularSearches(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rows and applies the default limit", func(t *testing.T) {
		repo := &fakeEventRepo{
			popular: []model.PopularSearch{
				{Query: "wireless mouse", Count: 12},
				{Query: "keyboard", Count: 5},
			},
		}
		uc := New(repo, nil, log.NewNoop())

		popular, err := uc.GetPopularSearches(ctx, analytics.GetPopularSearchesInput{})
		if err != nil {
			t.Fatalf("GetPopularSearches failed: %v", err)
		}
		if repo.lastLimit != analytics.DefaultPopularLimit {
			t.Errorf("Limit mismatch: got %d, want %d", repo.lastLimit, analytics.DefaultPopularLimit)
		}
		if len(popular) != 2 || popular[0].Query != "wireless mouse" || popular[0].Count != 12 {
			t.Errorf("Popular rows mismatch: %+v", popular)
		}
	})

	t.Run("aggregation failure wraps ErrAggregationFailed", func(t *testing.T) {
		repo := &fakeEventRepo{popularErr: errors.New("timeout")}
		uc := New(repo, nil, log.NewNoop())

		_, err := uc.GetPopularSearches(ctx, analytics.GetPopularSearchesInput{Limit: 5})
		if !errors.Is(err, analytics.ErrAggregationFailed) {
			t.Errorf("Expected ErrAggregationFailed, got %v", err)
		}
	})
}

func TestGetStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the aggregate row", func(t *testing.T) {
		repo := &fakeEventRepo{
			stats: model.SearchStatistics{
				TotalSearches:    100,
				UniqueQueries:    40,
				AvgResultCount:   8.5,
				ZeroResultCount:  3,
				SuggestionClicks: 17,
			},
		}
		uc := New(repo, nil, log.NewNoop())

		stats, err := uc.GetStatistics(ctx, analytics.GetStatisticsInput{Window: time.Hour})
		if err != nil {
			t.Fatalf("GetStatistics failed: %v", err)
		}
		if stats.TotalSearches != 100 || stats.UniqueQueries != 40 || stats.SuggestionClicks != 17 {
			t.Errorf("Statistics mismatch: %+v", stats)
		}

		wantSince := time.Now().UTC().Add(-time.Hour)
		if diff := repo.lastSince.Sub(wantSince); diff > time.Minute || diff < -time.Minute {
			t.Errorf("Since mismatch: got %v, want ~%v", repo.lastSince, wantSince)
		}
	})

	t.Run("default window applies when unset", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := New(repo, nil, log.NewNoop())

		if _, err := uc.GetStatistics(ctx, analytics.GetStatisticsInput{}); err != nil {
			t.Fatalf("GetStatistics failed: %v", err)
		}
		wantSince := time.Now().UTC().Add(-analytics.DefaultStatisticsWindow)
		if diff := repo.lastSince.Sub(wantSince); diff > time.Minute || diff < -time.Minute {
			t.Errorf("Since mismatch: got %v, want ~%v", repo.lastSince, wantSince)
		}
	})
}
