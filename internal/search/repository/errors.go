package repository

import "errors"

var (
	ErrFailedToSearch = errors.New("repository: failed to search products")
	ErrFailedToCount  = errors.New("repository: failed to count products")
	ErrCacheMiss      = errors.New("repository: cache miss")
	ErrCacheSetFailed = errors.New("repository: failed to set cache")
)
