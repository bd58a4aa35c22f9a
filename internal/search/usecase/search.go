package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"search-srv/internal/analytics"
	"search-srv/internal/search"
)

// Search - Main search method
// Flow: check cache → process query → query store → rank → cache → track event → return
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (search.SearchOutput, error) {
	startTime := time.Now()

	// Apply paging defaults
	page := input.Page
	if page <= 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = uc.cfg.DefaultPageSize
	}
	if pageSize > uc.cfg.MaxPageSize {
		pageSize = uc.cfg.MaxPageSize
	}

	// Step 1: Check search results cache
	cacheKey := uc.generateCacheKey(input, page, pageSize)
	cachedData, err := uc.cacheRepo.GetSearchResults(ctx, cacheKey)
	if err == nil && cachedData != nil {
		var cached search.SearchOutput
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			cached.CacheHit = true
			cached.ProcessingTimeMs = time.Since(startTime).Milliseconds()
			uc.l.Debugf(ctx, "search.usecase.Search: cache hit for key %s", cacheKey)
			// Cache-hot repeats still count toward suggestion recency.
			uc.suggestUC.RecordSearch(input.Query)
			return cached, nil
		}
	}

	// Step 2: Process the raw query
	processed, err := uc.process(ctx, input)
	if err != nil {
		return search.SearchOutput{}, err
	}

	// Step 3: Query the product store
	products, total, err := uc.repo.SearchProducts(ctx, uc.buildOptions(processed, page, pageSize))
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: store search failed: %v", err)
		return search.SearchOutput{}, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}

	// Step 4: Rank the page of candidates
	results := uc.rank(products, processed)

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	output := search.SearchOutput{
		Results:          results,
		Tokens:           processed.Tokens,
		Total:            total,
		Page:             page,
		PageSize:         pageSize,
		TotalPages:       totalPages,
		CacheHit:         false,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}

	// Step 5: Cache results
	if data, err := json.Marshal(output); err == nil {
		if err := uc.cacheRepo.SaveSearchResults(ctx, cacheKey, data); err != nil {
			uc.l.Warnf(ctx, "search.usecase.Search: Failed to save cache: %v", err)
		}
	}

	// Step 6: Track the search event, fire-and-forget
	if err := uc.analyticsUC.TrackSearch(ctx, analytics.TrackSearchInput{
		Query:       input.Query,
		ResultCount: total,
		Filters:     input.Filters,
	}); err != nil {
		uc.l.Warnf(ctx, "search.usecase.Search: Failed to track search event: %v", err)
	}

	uc.l.Infof(ctx, "search.usecase.Search: query=%q, results=%d, total=%d, duration=%dms",
		input.Query, len(results), total, output.ProcessingTimeMs)

	return output, nil
}
