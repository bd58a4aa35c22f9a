package usecase

import (
	"context"

	"search-srv/internal/search"
	"search-srv/pkg/textutil"
)

// process turns a raw query into its structured form: normalized
// tokens, extracted attributes, query variations and validated
// filters. Attributes are extracted from the original text, not the
// normalized tokens. Fails with ErrEmptyQuery only when normalization
// yields zero tokens and no filter survived validation.
func (uc *implUseCase) process(ctx context.Context, input search.SearchInput) (search.ProcessedQuery, error) {
	tokens := uc.normalizer.Normalize(input.Query)
	attrs := textutil.Extract(input.Query)
	variations := textutil.Expand(tokens, input.Query)
	filters := uc.validateFilters(ctx, input.Filters)

	if len(tokens) == 0 && filters.Empty() {
		return search.ProcessedQuery{}, search.ErrEmptyQuery
	}

	// Feed the raw text into the suggestion recency log.
	uc.suggestUC.RecordSearch(input.Query)

	return search.ProcessedQuery{
		Raw:    input.Query,
		Tokens: tokens,
		Attributes: search.Attributes{
			Color:        attrs.Color,
			PriceCeiling: attrs.PriceCeiling,
		},
		Variations: variations,
		Filters:    filters,
	}, nil
}
