package usecase

import (
	"context"
	"fmt"
	"time"

	"search-srv/internal/analytics"
)

func (uc *implUseCase) GetPopularSearches(ctx context.Context, input analytics.GetPopularSearchesInput) ([]analytics.PopularSearch, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = analytics.DefaultPopularLimit
	}

	rows, err := uc.repo.PopularSearches(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetPopularSearches: aggregation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", analytics.ErrAggregationFailed, err)
	}

	popular := make([]analytics.PopularSearch, len(rows))
	for i, row := range rows {
		popular[i] = analytics.PopularSearch{
			Query: row.Query,
			Count: row.Count,
		}
	}
	return popular, nil
}

func (uc *implUseCase) GetStatistics(ctx context.Context, input analytics.GetStatisticsInput) (analytics.Statistics, error) {
	window := input.Window
	if window <= 0 {
		window = analytics.DefaultStatisticsWindow
	}
	since := time.Now().UTC().Add(-window)

	stats, err := uc.repo.Statistics(ctx, since)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetStatistics: aggregation failed: %v", err)
		return analytics.Statistics{}, fmt.Errorf("%w: %v", analytics.ErrAggregationFailed, err)
	}

	return analytics.Statistics{
		TotalSearches:    stats.TotalSearches,
		UniqueQueries:    stats.UniqueQueries,
		AvgResultCount:   stats.AvgResultCount,
		ZeroResultCount:  stats.ZeroResultCount,
		SuggestionClicks: stats.SuggestionClicks,
	}, nil
}
