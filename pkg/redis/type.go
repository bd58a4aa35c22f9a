package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DefaultConnectTimeout is the maximum time to wait for the initial ping.
const DefaultConnectTimeout = 5 * time.Second

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis: invalid port")
)

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
