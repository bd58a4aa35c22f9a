package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"search-srv/internal/search/repository"
)

func (r *implCacheRepository) GetSearchResults(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := r.redis.GetClient().Get(ctx, cacheKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveSearchResults(ctx context.Context, cacheKey string, data []byte) error {
	if err := r.redis.GetClient().Set(ctx, cacheKey, data, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.SaveSearchResults: Failed to save to cache: %v", err)
		return repository.ErrCacheSetFailed
	}
	return nil
}
