package suggest

const (
	// SimilarityThreshold - minimum similarity for a candidate to be suggested
	SimilarityThreshold = 0.3

	// MaxRecentSearches bounds the recency map; exceeding it evicts
	// the entry with the lowest hit count
	MaxRecentSearches = 1000

	DefaultLimit = 5
	MaxLimit     = 20
)

// Suggestion kinds, in stage priority order.
const (
	KindProduct  = "product"
	KindCategory = "category"
	KindPopular  = "popular"
)

type SuggestInput struct {
	Partial string
	Limit   int
}

// Suggestion is one typeahead candidate. Score is ephemeral,
// recomputed on every request.
type Suggestion struct {
	Kind  string
	Text  string
	Score float64
}
