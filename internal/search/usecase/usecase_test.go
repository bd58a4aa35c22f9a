package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"search-srv/internal/analytics"
	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
	"search-srv/internal/suggest"
	"search-srv/pkg/log"
	"search-srv/pkg/textutil"
)

type fakeProductRepo struct {
	products []model.Product
	total    int64
	err      error

	calls    int
	lastOpts repository.SearchProductsOptions
}

func (f *fakeProductRepo) SearchProducts(_ context.Context, opts repository.SearchProductsOptions) ([]model.Product, int64, error) {
	f.calls++
	f.lastOpts = opts
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.products, f.total, nil
}

type fakeCacheRepo struct {
	data    map[string][]byte
	getErr  error
	saveErr error

	saved map[string][]byte
}

func (f *fakeCacheRepo) GetSearchResults(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if data, ok := f.data[key]; ok {
		return data, nil
	}
	return nil, repository.ErrCacheMiss
}

func (f *fakeCacheRepo) SaveSearchResults(_ context.Context, key string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[key] = data
	return nil
}

type fakeSuggestUC struct {
	recorded []string
}

func (f *fakeSuggestUC) Bootstrap(context.Context) error { return nil }
func (f *fakeSuggestUC) Suggest(context.Context, suggest.SuggestInput) ([]suggest.Suggestion, error) {
	return nil, nil
}
func (f *fakeSuggestUC) RecordSearch(query string) { f.recorded = append(f.recorded, query) }

type fakeAnalyticsUC struct {
	tracked  []analytics.TrackSearchInput
	trackErr error
}

func (f *fakeAnalyticsUC) TrackSearch(_ context.Context, input analytics.TrackSearchInput) error {
	f.tracked = append(f.tracked, input)
	return f.trackErr
}
func (f *fakeAnalyticsUC) TrackSuggestionClick(context.Context, analytics.TrackSuggestionClickInput) error {
	return nil
}
func (f *fakeAnalyticsUC) SaveEvent(context.Context, analytics.Event) error { return nil }
func (f *fakeAnalyticsUC) GetPopularSearches(context.Context, analytics.GetPopularSearchesInput) ([]analytics.PopularSearch, error) {
	return nil, nil
}
func (f *fakeAnalyticsUC) GetStatistics(context.Context, analytics.GetStatisticsInput) (analytics.Statistics, error) {
	return analytics.Statistics{}, nil
}

func newTestUseCase(t *testing.T, repo *fakeProductRepo, cache *fakeCacheRepo) (*implUseCase, *fakeSuggestUC, *fakeAnalyticsUC) {
	t.Helper()

	normalizer, err := textutil.NewNormalizer()
	if err != nil {
		t.Fatalf("failed to create normalizer: %v", err)
	}

	suggestUC := &fakeSuggestUC{}
	analyticsUC := &fakeAnalyticsUC{}
	uc := New(repo, cache, suggestUC, analyticsUC, normalizer, log.NewNoop(), DefaultConfig()).(*implUseCase)
	return uc, suggestUC, analyticsUC
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts tokens and attributes", func(t *testing.T) {
		uc, suggestUC, _ := newTestUseCase(t, &fakeProductRepo{}, &fakeCacheRepo{})

		processed, err := uc.process(ctx, search.SearchInput{Query: "I want a red bag under $50"})
		if err != nil {
			t.Fatalf("process failed: %v", err)
		}

		if !containsToken(processed.Tokens, "red") || !containsToken(processed.Tokens, "bag") {
			t.Errorf("Tokens should contain red and bag, got %v", processed.Tokens)
		}
		if containsToken(processed.Tokens, "i") || containsToken(processed.Tokens, "a") {
			t.Errorf("Stop words should be dropped, got %v", processed.Tokens)
		}

		if processed.Attributes.Color == nil || *processed.Attributes.Color != "red" {
			t.Errorf("Color mismatch: got %v, want red", processed.Attributes.Color)
		}
		if processed.Attributes.PriceCeiling == nil || *processed.Attributes.PriceCeiling != 50 {
			t.Errorf("PriceCeiling mismatch: got %v, want 50", processed.Attributes.PriceCeiling)
		}

		if len(processed.Variations) == 0 {
			t.Error("Variations should not be empty")
		}
		if processed.Variations[0] != "I want a red bag under $50" {
			t.Errorf("First variation should be the original query, got %q", processed.Variations[0])
		}

		if len(suggestUC.recorded) != 1 || suggestUC.recorded[0] != "I want a red bag under $50" {
			t.Errorf("Raw query should be recorded for suggestions, got %v", suggestUC.recorded)
		}
	})

	t.Run("empty after normalization without filters", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t, &fakeProductRepo{}, &fakeCacheRepo{})

		_, err := uc.process(ctx, search.SearchInput{Query: "the of and"})
		if !errors.Is(err, search.ErrEmptyQuery) {
			t.Errorf("Expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("empty query with valid filter survives", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t, &fakeProductRepo{}, &fakeCacheRepo{})

		processed, err := uc.process(ctx, search.SearchInput{
			Query:   "the",
			Filters: map[string]interface{}{"category": "electronics"},
		})
		if err != nil {
			t.Fatalf("process failed: %v", err)
		}
		if processed.Filters.Category == nil || *processed.Filters.Category != "electronics" {
			t.Errorf("Category mismatch: got %v, want electronics", processed.Filters.Category)
		}
	})
}

func TestValidateFilters(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUseCase(t, &fakeProductRepo{}, &fakeCacheRepo{})

	t.Run("valid filters pass through", func(t *testing.T) {
		filters := uc.validateFilters(ctx, map[string]interface{}{
			"price_range": map[string]interface{}{"min": 10.0, "max": 100.0},
			"rating":      4.0,
			"category":    "home",
			"sort_by":     "price_asc",
		})

		if filters.PriceMin == nil || *filters.PriceMin != 10 {
			t.Errorf("PriceMin mismatch: got %v, want 10", filters.PriceMin)
		}
		if filters.PriceMax == nil || *filters.PriceMax != 100 {
			t.Errorf("PriceMax mismatch: got %v, want 100", filters.PriceMax)
		}
		if filters.MinRating == nil || *filters.MinRating != 4 {
			t.Errorf("MinRating mismatch: got %v, want 4", filters.MinRating)
		}
		if filters.Category == nil || *filters.Category != "home" {
			t.Errorf("Category mismatch: got %v, want home", filters.Category)
		}
		if filters.SortBy == nil || *filters.SortBy != search.SortByPriceAsc {
			t.Errorf("SortBy mismatch: got %v, want price_asc", filters.SortBy)
		}
	})

	t.Run("invalid value drops only that filter", func(t *testing.T) {
		filters := uc.validateFilters(ctx, map[string]interface{}{
			"price_range": map[string]interface{}{"min": "abc", "max": 50.0},
			"rating":      "4.5",
			"category":    "",
			"sort_by":     "bogus",
		})

		if filters.PriceMin != nil {
			t.Errorf("Invalid price min should be dropped, got %v", *filters.PriceMin)
		}
		if filters.PriceMax == nil || *filters.PriceMax != 50 {
			t.Errorf("Valid price max should survive, got %v", filters.PriceMax)
		}
		if filters.MinRating == nil || *filters.MinRating != 4.5 {
			t.Errorf("String rating should coerce, got %v", filters.MinRating)
		}
		if filters.Category != nil {
			t.Errorf("Empty category should be dropped, got %v", *filters.Category)
		}
		if filters.SortBy != nil {
			t.Errorf("Unknown sort order should be dropped, got %v", *filters.SortBy)
		}
	})

	t.Run("numeric coercion shapes", func(t *testing.T) {
		filters := uc.validateFilters(ctx, map[string]interface{}{"rating": 4})
		if filters.MinRating == nil || *filters.MinRating != 4 {
			t.Errorf("int rating should coerce, got %v", filters.MinRating)
		}

		filters = uc.validateFilters(ctx, map[string]interface{}{"rating": int64(3)})
		if filters.MinRating == nil || *filters.MinRating != 3 {
			t.Errorf("int64 rating should coerce, got %v", filters.MinRating)
		}
	})

	t.Run("nil map yields empty filters", func(t *testing.T) {
		filters := uc.validateFilters(ctx, nil)
		if !filters.Empty() {
			t.Errorf("Expected empty filters, got %+v", filters)
		}
	})
}

func TestRank(t *testing.T) {
	uc, _, _ := newTestUseCase(t, &fakeProductRepo{}, &fakeCacheRepo{})

	q := search.ProcessedQuery{Tokens: []string{"wireless", "mouse"}}

	t.Run("text score dominates with identical titles", func(t *testing.T) {
		candidates := []model.Product{
			{ID: "low", Title: "wireless mouse", TextScore: 0.1},
			{ID: "high", Title: "wireless mouse", TextScore: 0.9},
		}

		results := uc.rank(candidates, q)
		if len(results) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(results))
		}
		if results[0].ID != "high" {
			t.Errorf("Highest text score should rank first, got %s", results[0].ID)
		}

		want := search.TextScoreWeight*0.9 + search.SimilarityScoreWeight*1.0
		if diff := results[0].RelevanceScore - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("RelevanceScore mismatch: got %f, want %f", results[0].RelevanceScore, want)
		}
	})

	t.Run("equal scores keep input order", func(t *testing.T) {
		candidates := []model.Product{
			{ID: "first", Title: "wireless mouse", TextScore: 0.5},
			{ID: "second", Title: "wireless mouse", TextScore: 0.5},
		}

		results := uc.rank(candidates, q)
		if results[0].ID != "first" || results[1].ID != "second" {
			t.Errorf("Tied results should keep input order, got %s, %s", results[0].ID, results[1].ID)
		}
	})

	t.Run("empty title gets zero similarity", func(t *testing.T) {
		candidates := []model.Product{{ID: "p1", Title: "", TextScore: 0.4}}

		results := uc.rank(candidates, q)
		want := search.TextScoreWeight * 0.4
		if diff := results[0].RelevanceScore - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("RelevanceScore mismatch: got %f, want %f", results[0].RelevanceScore, want)
		}
	})

	t.Run("nullable columns map to pointers", func(t *testing.T) {
		candidates := []model.Product{
			{
				ID:     "p1",
				Title:  "wireless mouse",
				Price:  sql.NullFloat64{Float64: 29.99, Valid: true},
				Rating: sql.NullFloat64{},
			},
		}

		results := uc.rank(candidates, q)
		if results[0].Price == nil || *results[0].Price != 29.99 {
			t.Errorf("Price mismatch: got %v, want 29.99", results[0].Price)
		}
		if results[0].Rating != nil {
			t.Errorf("Null rating should map to nil, got %v", *results[0].Rating)
		}
	})
}

func TestGenerateCacheKey(t *testing.T) {
	uc, _, _ := newTestUseCase(t, &fakeProductRepo{}, &fakeCacheRepo{})

	input := search.SearchInput{
		Query:   "wireless mouse",
		Filters: map[string]interface{}{"category": "electronics"},
	}

	key1 := uc.generateCacheKey(input, 1, 10)
	key2 := uc.generateCacheKey(input, 1, 10)
	if key1 != key2 {
		t.Errorf("Same input should produce the same key: %s != %s", key1, key2)
	}

	key3 := uc.generateCacheKey(input, 2, 10)
	if key1 == key3 {
		t.Error("Different page should produce a different key")
	}

	otherQuery := input
	otherQuery.Query = "wired mouse"
	key4 := uc.generateCacheKey(otherQuery, 1, 10)
	if key1 == key4 {
		t.Error("Different query should produce a different key")
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("full flow on cache miss", func(t *testing.T) {
		repo := &fakeProductRepo{
			products: []model.Product{
				{ID: "p1", Title: "wireless mouse", CategoryID: "electronics", TextScore: 0.8},
				{ID: "p2", Title: "wired mouse", CategoryID: "electronics", TextScore: 0.6},
			},
			total: 25,
		}
		cache := &fakeCacheRepo{}
		uc, suggestUC, analyticsUC := newTestUseCase(t, repo, cache)

		output, err := uc.Search(ctx, search.SearchInput{Query: "wireless mouse"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}

		if output.CacheHit {
			t.Error("First search should not be a cache hit")
		}
		if len(output.Results) != 2 {
			t.Errorf("Expected 2 results, got %d", len(output.Results))
		}
		if output.Total != 25 {
			t.Errorf("Total mismatch: got %d, want 25", output.Total)
		}
		if output.Page != 1 || output.PageSize != 10 {
			t.Errorf("Paging defaults mismatch: page=%d, pageSize=%d", output.Page, output.PageSize)
		}
		if output.TotalPages != 3 {
			t.Errorf("TotalPages mismatch: got %d, want 3", output.TotalPages)
		}
		if !containsToken(output.Tokens, "wireless") || !containsToken(output.Tokens, "mouse") {
			t.Errorf("Processed tokens should be echoed back, got %v", output.Tokens)
		}

		if len(cache.saved) != 1 {
			t.Errorf("Results should be cached, saved=%d", len(cache.saved))
		}
		if len(suggestUC.recorded) != 1 {
			t.Errorf("Query should be recorded, recorded=%d", len(suggestUC.recorded))
		}
		if len(analyticsUC.tracked) != 1 {
			t.Fatalf("Search event should be tracked, tracked=%d", len(analyticsUC.tracked))
		}
		if analyticsUC.tracked[0].Query != "wireless mouse" || analyticsUC.tracked[0].ResultCount != 25 {
			t.Errorf("Tracked event mismatch: %+v", analyticsUC.tracked[0])
		}
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		input := search.SearchInput{Query: "wireless mouse"}
		repo := &fakeProductRepo{}
		cache := &fakeCacheRepo{data: map[string][]byte{}}
		uc, suggestUC, _ := newTestUseCase(t, repo, cache)

		cached := search.SearchOutput{
			Results: []search.RankedResult{{ID: "p1", Title: "wireless mouse"}},
			Total:   1, Page: 1, PageSize: 10, TotalPages: 1,
		}
		data, _ := json.Marshal(cached)
		cache.data[uc.generateCacheKey(input, 1, 10)] = data

		output, err := uc.Search(ctx, input)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if !output.CacheHit {
			t.Error("Expected a cache hit")
		}
		if repo.calls != 0 {
			t.Errorf("Store should not be queried on cache hit, calls=%d", repo.calls)
		}
		if len(output.Results) != 1 || output.Results[0].ID != "p1" {
			t.Errorf("Cached results mismatch: %+v", output.Results)
		}
		if len(suggestUC.recorded) != 1 || suggestUC.recorded[0] != "wireless mouse" {
			t.Errorf("Cache-hot query should still be recorded, recorded=%v", suggestUC.recorded)
		}
	})

	t.Run("page size clamped to maximum", func(t *testing.T) {
		repo := &fakeProductRepo{total: 1}
		uc, _, _ := newTestUseCase(t, repo, &fakeCacheRepo{})

		output, err := uc.Search(ctx, search.SearchInput{Query: "mouse", Page: 2, PageSize: 5000})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if output.PageSize != uc.cfg.MaxPageSize {
			t.Errorf("PageSize should clamp to %d, got %d", uc.cfg.MaxPageSize, output.PageSize)
		}
		if repo.lastOpts.Offset != uc.cfg.MaxPageSize {
			t.Errorf("Offset mismatch: got %d, want %d", repo.lastOpts.Offset, uc.cfg.MaxPageSize)
		}
	})

	t.Run("store failure wraps ErrSearchFailed", func(t *testing.T) {
		repo := &fakeProductRepo{err: errors.New("connection refused")}
		uc, _, _ := newTestUseCase(t, repo, &fakeCacheRepo{})

		_, err := uc.Search(ctx, search.SearchInput{Query: "mouse"})
		if !errors.Is(err, search.ErrSearchFailed) {
			t.Errorf("Expected ErrSearchFailed, got %v", err)
		}
	})

	t.Run("tracking failure does not fail the search", func(t *testing.T) {
		repo := &fakeProductRepo{total: 1}
		cache := &fakeCacheRepo{}
		uc, _, analyticsUC := newTestUseCase(t, repo, cache)
		analyticsUC.trackErr = errors.New("broker down")

		_, err := uc.Search(ctx, search.SearchInput{Query: "mouse"})
		if err != nil {
			t.Errorf("Search should succeed despite tracking failure, got %v", err)
		}
	})

	t.Run("color attribute reaches the store options", func(t *testing.T) {
		repo := &fakeProductRepo{}
		uc, _, _ := newTestUseCase(t, repo, &fakeCacheRepo{})

		_, err := uc.Search(ctx, search.SearchInput{Query: "red backpack"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if repo.lastOpts.Color == nil || *repo.lastOpts.Color != "red" {
			t.Errorf("Color option mismatch: got %v, want red", repo.lastOpts.Color)
		}
	})
}

func containsToken(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}
	}
	return false
}
