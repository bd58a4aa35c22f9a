package postgre

import (
	"context"
	"time"

	"search-srv/internal/analytics/repository"
	"search-srv/internal/model"
)

func (r *implEventRepository) InsertEvent(ctx context.Context, event model.SearchEvent) error {
	query := `INSERT INTO search_events (id, type, query, result_count, filters, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query,
		event.ID, event.Type, event.Query, event.ResultCount, event.Filters, event.CreatedAt); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.InsertEvent: insert failed: %v", err)
		return repository.ErrFailedToInsert
	}
	return nil
}

func (r *implEventRepository) PopularSearches(ctx context.Context, limit int) ([]model.PopularSearch, error) {
	query := `SELECT query, COUNT(*) AS count
		FROM search_events
		WHERE type = $1 AND query <> ''
		GROUP BY query
		ORDER BY count DESC, query ASC
		LIMIT $2`

	var rows []model.PopularSearch
	if err := r.db.SelectContext(ctx, &rows, query, model.SearchEventTypeSearch, limit); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.PopularSearches: query failed: %v", err)
		return nil, repository.ErrFailedToAggregate
	}
	return rows, nil
}

func (r *implEventRepository) Statistics(ctx context.Context, since time.Time) (model.SearchStatistics, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE type = $1) AS total_searches,
		COUNT(DISTINCT query) FILTER (WHERE type = $1) AS unique_queries,
		COALESCE(AVG(result_count) FILTER (WHERE type = $1), 0) AS avg_result_count,
		COUNT(*) FILTER (WHERE type = $1 AND result_count = 0) AS zero_result_count,
		COUNT(*) FILTER (WHERE type = $2) AS suggestion_clicks
		FROM search_events
		WHERE created_at >= $3`

	var stats model.SearchStatistics
	if err := r.db.GetContext(ctx, &stats, query,
		model.SearchEventTypeSearch, model.SearchEventTypeSuggestionClick, since); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.Statistics: query failed: %v", err)
		return model.SearchStatistics{}, repository.ErrFailedToAggregate
	}
	return stats, nil
}
