package usecase

import (
	"context"
	"fmt"
	"sort"

	"search-srv/internal/suggest"
	"search-srv/pkg/textutil"
)

// Suggest ranks candidates from the three pools against the partial
// query. Stages run in fixed priority order {product, category,
// popular}; each stage is sorted independently and later stages run
// only while the limit is under-filled. There is no cross-stage
// re-sort: near title matches outrank category and popularity
// signals by construction.
func (uc *implUseCase) Suggest(ctx context.Context, input suggest.SuggestInput) ([]suggest.Suggestion, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.DefaultLimit
	}
	if limit > uc.cfg.MaxLimit {
		limit = uc.cfg.MaxLimit
	}

	partial := uc.normalizer.NormalizeJoin(input.Partial)

	suggestions := uc.titleStage(partial, limit)

	if len(suggestions) < limit {
		suggestions = append(suggestions, uc.categoryStage(partial, limit-len(suggestions))...)
	}

	if len(suggestions) < limit {
		suggestions = append(suggestions, uc.popularStage(partial, limit-len(suggestions))...)
	}

	uc.l.Debugf(ctx, "suggest.usecase.Suggest: partial=%q, suggestions=%d", input.Partial, len(suggestions))
	return suggestions, nil
}

func (uc *implUseCase) titleStage(partial string, limit int) []suggest.Suggestion {
	uc.poolMu.RLock()
	titles := uc.titles
	uc.poolMu.RUnlock()

	var candidates []suggest.Suggestion
	for _, title := range titles {
		score := textutil.Similarity(partial, title)
		if score > suggest.SimilarityThreshold {
			candidates = append(candidates, suggest.Suggestion{
				Kind:  suggest.KindProduct,
				Text:  title,
				Score: score,
			})
		}
	}

	return takeTop(candidates, limit)
}

func (uc *implUseCase) categoryStage(partial string, limit int) []suggest.Suggestion {
	uc.poolMu.RLock()
	categories := uc.categories
	uc.poolMu.RUnlock()

	var candidates []suggest.Suggestion
	for _, category := range categories {
		score := textutil.Similarity(partial, category)
		if score > suggest.SimilarityThreshold {
			candidates = append(candidates, suggest.Suggestion{
				Kind:  suggest.KindCategory,
				Text:  fmt.Sprintf("Category: %s", category),
				Score: score,
			})
		}
	}

	return takeTop(candidates, limit)
}

// popularStage scores each recent query by similarity weighted with
// its relative hit frequency.
func (uc *implUseCase) popularStage(partial string, limit int) []suggest.Suggestion {
	uc.recentMu.RLock()
	recent := make(map[string]int, len(uc.recent))
	maxCount := 0
	for q, count := range uc.recent {
		recent[q] = count
		if count > maxCount {
			maxCount = count
		}
	}
	uc.recentMu.RUnlock()

	if maxCount == 0 {
		return nil
	}

	var candidates []suggest.Suggestion
	for query, count := range recent {
		score := textutil.Similarity(partial, query) * (float64(count) / float64(maxCount))
		if score > suggest.SimilarityThreshold {
			candidates = append(candidates, suggest.Suggestion{
				Kind:  suggest.KindPopular,
				Text:  query,
				Score: score,
			})
		}
	}

	return takeTop(candidates, limit)
}

func takeTop(candidates []suggest.Suggestion, limit int) []suggest.Suggestion {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
