package suggest

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Bootstrap populates the title and category pools from the
	// product store. A missing pool is non-fatal; that stage simply
	// yields no suggestions.
	Bootstrap(ctx context.Context) error

	Suggest(ctx context.Context, input SuggestInput) ([]Suggestion, error)

	// RecordSearch increments the hit count of query in the bounded
	// recency map. Safe for concurrent use.
	RecordSearch(query string)
}
