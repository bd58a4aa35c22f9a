package usecase

import (
	"sync"

	"search-srv/internal/suggest"
	"search-srv/internal/suggest/repository"
	"search-srv/pkg/log"
	"search-srv/pkg/textutil"
)

// Config - UseCase configuration
type Config struct {
	MaxRecentSearches int
	DefaultLimit      int
	MaxLimit          int
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		MaxRecentSearches: suggest.MaxRecentSearches,
		DefaultLimit:      suggest.DefaultLimit,
		MaxLimit:          suggest.MaxLimit,
	}
}

// implUseCase owns the three suggestion pools. Titles and categories
// are loaded once by Bootstrap and only read afterwards; the recency
// map is mutated by every RecordSearch, so reads and writes go
// through poolMu and recentMu respectively.
type implUseCase struct {
	repo       repository.PoolRepository
	normalizer *textutil.Normalizer
	l          log.Logger
	cfg        Config

	poolMu     sync.RWMutex
	titles     []string
	categories []string

	recentMu sync.RWMutex
	recent   map[string]int
}

// New - Factory function
func New(
	repo repository.PoolRepository,
	normalizer *textutil.Normalizer,
	l log.Logger,
	cfg Config,
) suggest.UseCase {
	if cfg.MaxRecentSearches <= 0 {
		cfg.MaxRecentSearches = suggest.MaxRecentSearches
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = suggest.DefaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = suggest.MaxLimit
	}
	return &implUseCase{
		repo:       repo,
		normalizer: normalizer,
		l:          l,
		cfg:        cfg,
		recent:     make(map[string]int),
	}
}
