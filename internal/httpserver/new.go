package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"search-srv/config"
	"search-srv/internal/analytics"
	"search-srv/internal/suggest"
	"search-srv/pkg/discord"
	pkgKafka "search-srv/pkg/kafka"
	"search-srv/pkg/log"
	pkgRedis "search-srv/pkg/redis"
	"search-srv/pkg/textutil"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Backends
	postgresDB    *sqlx.DB
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	// Shared text pipeline
	normalizer *textutil.Normalizer

	// Cross-domain usecases, populated by the domain setup files
	suggestUC   suggest.UseCase
	analyticsUC analytics.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Backends
	PostgresDB    *sqlx.DB
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	normalizer, err := textutil.NewNormalizer()
	if err != nil {
		return nil, err
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		normalizer: normalizer,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	return nil
}
