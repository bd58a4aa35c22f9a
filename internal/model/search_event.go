package model

import "time"

// Search event types persisted in the analytics log.
const (
	SearchEventTypeSearch          = "search"
	SearchEventTypeSuggestionClick = "suggestion_click"
)

// SearchEvent is one row of the time-stamped analytics event log.
// Filters holds the structured filters of a search as raw JSON.
type SearchEvent struct {
	ID          string    `db:"id"`
	Type        string    `db:"type"`
	Query       string    `db:"query"`
	ResultCount int64     `db:"result_count"`
	Filters     []byte    `db:"filters"`
	CreatedAt   time.Time `db:"created_at"`
}

// PopularSearch is an aggregation row: one query and how often it was searched.
type PopularSearch struct {
	Query string `db:"query"`
	Count int64  `db:"count"`
}

// SearchStatistics summarizes the event log over a time window.
type SearchStatistics struct {
	TotalSearches    int64   `db:"total_searches"`
	UniqueQueries    int64   `db:"unique_queries"`
	AvgResultCount   float64 `db:"avg_result_count"`
	ZeroResultCount  int64   `db:"zero_result_count"`
	SuggestionClicks int64   `db:"suggestion_clicks"`
}
