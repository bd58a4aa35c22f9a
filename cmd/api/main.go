package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"search-srv/config"
	configKafka "search-srv/config/kafka"
	configPostgre "search-srv/config/postgre"
	configRedis "search-srv/config/redis"
	"search-srv/internal/httpserver"
	"search-srv/pkg/discord"
	"search-srv/pkg/log"
)

// @title       Catalog Search Service API
// @description Product catalog search, typeahead suggestions and search analytics.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 6. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize Kafka producer
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)

	// 8. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Backend Configuration
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
