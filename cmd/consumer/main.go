package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"search-srv/config"
	configPostgre "search-srv/config/postgre"
	"search-srv/internal/consumer"
	"search-srv/pkg/discord"
	"search-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Search Analytics Consumer...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:      logger,
		KafkaConfig: cfg.Kafka,
		PostgresDB:  postgresDB,
		Discord:     discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
