package usecase

import (
	"sort"
	"strings"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/pkg/textutil"
)

// rank blends the engine text score with the lexical similarity of
// each candidate title against the joined query tokens. Total order:
// descending relevance score, ties broken by descending text score,
// then stable input order.
func (uc *implUseCase) rank(candidates []model.Product, q search.ProcessedQuery) []search.RankedResult {
	joined := strings.Join(q.Tokens, " ")

	results := make([]search.RankedResult, 0, len(candidates))
	for _, c := range candidates {
		var sim float64
		if c.Title != "" {
			sim = textutil.Similarity(joined, c.Title)
		}
		score := search.TextScoreWeight*c.TextScore + search.SimilarityScoreWeight*sim
		results = append(results, mapProduct(c, score))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].TextScore > results[j].TextScore
	})

	return results
}

func mapProduct(p model.Product, score float64) search.RankedResult {
	result := search.RankedResult{
		ID:             p.ID,
		Title:          p.Title,
		CategoryID:     p.CategoryID,
		RelevanceScore: score,
		TextScore:      p.TextScore,
	}
	if p.BulletPoints.Valid {
		result.BulletPoints = p.BulletPoints.String
	}
	if p.Price.Valid {
		price := p.Price.Float64
		result.Price = &price
	}
	if p.Rating.Valid {
		rating := p.Rating.Float64
		result.Rating = &rating
	}
	return result
}
