package redis

import (
	"time"

	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
	pkgRedis "search-srv/pkg/redis"
)

// defaultSearchResultsTTL bounds staleness of cached result pages when
// no TTL is configured.
const defaultSearchResultsTTL = 5 * time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultSearchResultsTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
