package usecase

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
	"search-srv/pkg/paginator"
)

// generateCacheKey - Search results cache key
func (uc *implUseCase) generateCacheKey(input search.SearchInput, page, pageSize int) string {
	filterJSON, _ := json.Marshal(input.Filters)
	raw := fmt.Sprintf("%s:%s:%d:%d", input.Query, string(filterJSON), page, pageSize)
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("search:%x", hash)
}

// buildOptions - Map a processed query onto the store contract
func (uc *implUseCase) buildOptions(q search.ProcessedQuery, page, pageSize int) repository.SearchProductsOptions {
	opts := repository.SearchProductsOptions{
		Tokens:    q.Tokens,
		Color:     q.Attributes.Color,
		PriceMin:  q.Filters.PriceMin,
		PriceMax:  q.Filters.PriceMax,
		MinRating: q.Filters.MinRating,
		Category:  q.Filters.Category,
		Limit:     pageSize,
		Offset:    paginator.PaginateQuery{Page: page, PageSize: pageSize}.Offset(),
	}
	if q.Filters.SortBy != nil {
		opts.SortBy = *q.Filters.SortBy
	}
	return opts
}
