package postgre

import (
	"context"
	"fmt"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
)

func (r *implProductRepository) SearchProducts(ctx context.Context, opts repository.SearchProductsOptions) ([]model.Product, int64, error) {
	q := buildSearchQuery(opts)

	query := fmt.Sprintf("%s%s%s LIMIT %d OFFSET %d",
		q.selectClause, q.whereClause, q.orderClause, opts.Limit, opts.Offset)

	var products []model.Product
	if err := r.db.SelectContext(ctx, &products, query, q.args...); err != nil {
		r.l.Errorf(ctx, "search.repository.postgre.SearchProducts: query failed: %v", err)
		return nil, 0, repository.ErrFailedToSearch
	}

	countQuery := "SELECT COUNT(*) FROM products" + q.whereClause
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, q.args...); err != nil {
		r.l.Errorf(ctx, "search.repository.postgre.SearchProducts: count failed: %v", err)
		return nil, 0, repository.ErrFailedToCount
	}

	return products, total, nil
}
