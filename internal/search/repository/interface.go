package repository

import (
	"context"

	"search-srv/internal/model"
)

//go:generate mockery --name ProductRepository
type ProductRepository interface {
	// SearchProducts returns one page of matching products plus the
	// total match count. Rows carry the engine text score when the
	// options include full-text tokens.
	SearchProducts(ctx context.Context, opts SearchProductsOptions) ([]model.Product, int64, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSearchResults(ctx context.Context, cacheKey string) ([]byte, error)
	SaveSearchResults(ctx context.Context, cacheKey string, data []byte) error
}
