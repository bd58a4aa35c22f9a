package repository

import "context"

//go:generate mockery --name PoolRepository
type PoolRepository interface {
	DistinctTitles(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}
