package usecase

import (
	"context"
	"strconv"

	"search-srv/internal/search"
)

// validateFilters validates each recognized filter key independently.
// A value that fails coercion is dropped with a warning; it never
// blocks the other filters or the request itself.
func (uc *implUseCase) validateFilters(ctx context.Context, raw map[string]interface{}) search.ValidatedFilters {
	var filters search.ValidatedFilters
	if raw == nil {
		return filters
	}

	if v, ok := raw["price_range"]; ok {
		if rng, ok := v.(map[string]interface{}); ok {
			if minRaw, ok := rng["min"]; ok {
				if f, ok := coerceFloat(minRaw); ok {
					filters.PriceMin = &f
				} else {
					uc.l.Warnf(ctx, "search.usecase.validateFilters: dropping price_range.min %v", minRaw)
				}
			}
			if maxRaw, ok := rng["max"]; ok {
				if f, ok := coerceFloat(maxRaw); ok {
					filters.PriceMax = &f
				} else {
					uc.l.Warnf(ctx, "search.usecase.validateFilters: dropping price_range.max %v", maxRaw)
				}
			}
		} else {
			uc.l.Warnf(ctx, "search.usecase.validateFilters: dropping malformed price_range %v", v)
		}
	}

	if v, ok := raw["rating"]; ok {
		if f, ok := coerceFloat(v); ok {
			filters.MinRating = &f
		} else {
			uc.l.Warnf(ctx, "search.usecase.validateFilters: dropping rating %v", v)
		}
	}

	if v, ok := raw["category"]; ok {
		if s, ok := v.(string); ok && s != "" {
			filters.Category = &s
		} else {
			uc.l.Warnf(ctx, "search.usecase.validateFilters: dropping category %v", v)
		}
	}

	if v, ok := raw["sort_by"]; ok {
		if s, ok := v.(string); ok && isValidSortBy(s) {
			filters.SortBy = &s
		} else {
			uc.l.Warnf(ctx, "search.usecase.validateFilters: dropping sort_by %v", v)
		}
	}

	return filters
}

func isValidSortBy(s string) bool {
	switch s {
	case search.SortByPriceAsc, search.SortByPriceDesc, search.SortByRating:
		return true
	}
	return false
}

// coerceFloat accepts the numeric shapes a JSON body or query string
// can produce.
func coerceFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
