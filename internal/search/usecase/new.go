package usecase

import (
	"search-srv/internal/analytics"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
	"search-srv/internal/suggest"
	"search-srv/pkg/log"
	"search-srv/pkg/textutil"
)

// Config - UseCase configuration
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo        repository.ProductRepository
	cacheRepo   repository.CacheRepository
	suggestUC   suggest.UseCase
	analyticsUC analytics.UseCase
	normalizer  *textutil.Normalizer
	l           log.Logger
	cfg         Config
}

// New - Factory function
func New(
	repo repository.ProductRepository,
	cacheRepo repository.CacheRepository,
	suggestUC suggest.UseCase,
	analyticsUC analytics.UseCase,
	normalizer *textutil.Normalizer,
	l log.Logger,
	cfg Config,
) search.UseCase {
	return &implUseCase{
		repo:        repo,
		cacheRepo:   cacheRepo,
		suggestUC:   suggestUC,
		analyticsUC: analyticsUC,
		normalizer:  normalizer,
		l:           l,
		cfg:         cfg,
	}
}
