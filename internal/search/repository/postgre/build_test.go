package postgre

import (
	"strings"
	"testing"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

func TestBuildSearchQuery(t *testing.T) {
	t.Run("full-text tokens drive select and where", func(t *testing.T) {
		q := buildSearchQuery(repository.SearchProductsOptions{
			Tokens: []string{"wireless", "mouse"},
		})

		if !strings.Contains(q.selectClause, "ts_rank") {
			t.Errorf("Select should rank by text score: %s", q.selectClause)
		}
		if !strings.Contains(q.whereClause, "websearch_to_tsquery") {
			t.Errorf("Where should match the full-text query: %s", q.whereClause)
		}
		if len(q.args) != 1 {
			t.Fatalf("Expected 1 arg, got %d", len(q.args))
		}
		if q.args[0] != "wireless mouse" {
			t.Errorf("Token arg mismatch: got %v", q.args[0])
		}
	})

	t.Run("no tokens falls back to zero text score", func(t *testing.T) {
		q := buildSearchQuery(repository.SearchProductsOptions{})

		if !strings.Contains(q.selectClause, "0 AS text_score") {
			t.Errorf("Select should carry a zero text score: %s", q.selectClause)
		}
		if q.whereClause != "" {
			t.Errorf("Where should be empty, got %s", q.whereClause)
		}
		if len(q.args) != 0 {
			t.Errorf("Expected no args, got %v", q.args)
		}
	})

	t.Run("all filters produce one condition each", func(t *testing.T) {
		color := "red"
		priceMin, priceMax, minRating := 10.0, 100.0, 4.0
		category := "electronics"

		q := buildSearchQuery(repository.SearchProductsOptions{
			Tokens:    []string{"bag"},
			Color:     &color,
			PriceMin:  &priceMin,
			PriceMax:  &priceMax,
			MinRating: &minRating,
			Category:  &category,
		})

		for _, cond := range []string{
			"search_vector @@",
			"title ILIKE",
			"price >=",
			"price <=",
			"rating >=",
			"category_id =",
		} {
			if !strings.Contains(q.whereClause, cond) {
				t.Errorf("Missing condition %q in %s", cond, q.whereClause)
			}
		}
		// tokens, color, price min, price max, rating, category
		if len(q.args) != 6 {
			t.Errorf("Expected 6 args, got %d: %v", len(q.args), q.args)
		}
		if q.args[1] != "%red%" {
			t.Errorf("Color arg should be a wildcard pattern, got %v", q.args[1])
		}
	})

	t.Run("placeholders are numbered in arg order", func(t *testing.T) {
		color := "blue"
		q := buildSearchQuery(repository.SearchProductsOptions{
			Tokens: []string{"mouse"},
			Color:  &color,
		})

		if !strings.Contains(q.selectClause, "$1") {
			t.Errorf("Select should reuse the token placeholder: %s", q.selectClause)
		}
		if !strings.Contains(q.whereClause, "$2") {
			t.Errorf("Where should carry the color placeholder: %s", q.whereClause)
		}
	})
}

func TestBuildOrderClause(t *testing.T) {
	cases := []struct {
		sortBy string
		want   string
	}{
		{search.SortByPriceAsc, " ORDER BY price ASC NULLS LAST, text_score DESC"},
		{search.SortByPriceDesc, " ORDER BY price DESC NULLS LAST, text_score DESC"},
		{search.SortByRating, " ORDER BY rating DESC NULLS LAST, text_score DESC"},
		{"", " ORDER BY text_score DESC"},
	}

	for _, tc := range cases {
		if got := buildOrderClause(tc.sortBy); got != tc.want {
			t.Errorf("buildOrderClause(%q) = %q, want %q", tc.sortBy, got, tc.want)
		}
	}
}
