package repository

// SearchProductsOptions - Options for SearchProducts
type SearchProductsOptions struct {
	Tokens    []string // full-text tokens; empty means filter-only search
	Color     *string  // matched against title and bullet points
	PriceMin  *float64
	PriceMax  *float64
	MinRating *float64
	Category  *string
	SortBy    string // price_asc | price_desc | rating; empty for relevance only
	Limit     int
	Offset    int
}
