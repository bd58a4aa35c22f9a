package postgre

import (
	"context"

	"search-srv/internal/suggest/repository"
)

func (r *implPoolRepository) DistinctTitles(ctx context.Context) ([]string, error) {
	var titles []string
	query := `SELECT DISTINCT title FROM products WHERE title <> ''`
	if err := r.db.SelectContext(ctx, &titles, query); err != nil {
		r.l.Errorf(ctx, "suggest.repository.postgre.DistinctTitles: query failed: %v", err)
		return nil, repository.ErrFailedToLoadTitles
	}
	return titles, nil
}

func (r *implPoolRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	query := `SELECT DISTINCT category_id FROM products WHERE category_id <> ''`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		r.l.Errorf(ctx, "suggest.repository.postgre.DistinctCategories: query failed: %v", err)
		return nil, repository.ErrFailedToLoadCategories
	}
	return categories, nil
}
