package search

// Ranking weights. The final relevance score blends the engine text
// score with the lexical similarity of the candidate title against
// the query tokens.
const (
	TextScoreWeight       = 0.7
	SimilarityScoreWeight = 0.3
)

// Sort orders accepted in the sort_by filter.
const (
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByRating    = "rating"
)

type SearchInput struct {
	Query    string
	Filters  map[string]interface{}
	Page     int
	PageSize int
}

// ValidatedFilters holds the filters that survived validation.
// Each recognized filter is validated independently; a value that
// fails coercion is dropped without affecting the others.
type ValidatedFilters struct {
	PriceMin  *float64
	PriceMax  *float64
	MinRating *float64
	Category  *string
	SortBy    *string
}

// Empty reports whether no filter survived validation.
func (f ValidatedFilters) Empty() bool {
	return f.PriceMin == nil && f.PriceMax == nil && f.MinRating == nil &&
		f.Category == nil && f.SortBy == nil
}

// Attributes recognized in the raw query text.
type Attributes struct {
	Color        *string
	PriceCeiling *float64
}

// ProcessedQuery is the structured form of a raw query. Built once
// per request and immutable thereafter.
type ProcessedQuery struct {
	Raw        string
	Tokens     []string
	Attributes Attributes
	Variations []string
	Filters    ValidatedFilters
}

type RankedResult struct {
	ID             string
	Title          string
	CategoryID     string
	BulletPoints   string
	Price          *float64
	Rating         *float64
	RelevanceScore float64
	TextScore      float64
}

type SearchOutput struct {
	Results          []RankedResult
	Tokens           []string
	Total            int64
	Page             int
	PageSize         int
	TotalPages       int
	CacheHit         bool
	ProcessingTimeMs int64
}
