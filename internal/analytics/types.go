package analytics

import "time"

const (
	DefaultPopularLimit = 10

	// DefaultStatisticsWindow is used when no window is given.
	DefaultStatisticsWindow = 24 * time.Hour
)

// Event is one fire-and-forget analytics event. Produced by the API
// process, persisted by the consumer process.
type Event struct {
	ID          string
	Type        string
	Query       string
	ResultCount int64
	Filters     map[string]interface{}
	Timestamp   time.Time
}

type TrackSearchInput struct {
	Query       string
	ResultCount int64
	Filters     map[string]interface{}
}

type TrackSuggestionClickInput struct {
	Suggestion string
}

type GetPopularSearchesInput struct {
	Limit int
}

type PopularSearch struct {
	Query string
	Count int64
}

type GetStatisticsInput struct {
	Window time.Duration
}

type Statistics struct {
	TotalSearches    int64
	UniqueQueries    int64
	AvgResultCount   float64
	ZeroResultCount  int64
	SuggestionClicks int64
}
