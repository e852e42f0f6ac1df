package main

import (
	"context"
	"io"
	"os"

	"github.com/elys-network/aprcell/internal/cache"
	"github.com/elys-network/aprcell/internal/config"
	"github.com/elys-network/aprcell/internal/display"
	"github.com/elys-network/aprcell/internal/logger"
	"github.com/elys-network/aprcell/internal/state"
	"github.com/elys-network/aprcell/internal/web"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// main is the entry point for the APR cell service.
func main() {
	// --- 1. Initialization Phase ---
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Warning: .env file not found. Relying on OS environment variables.")
	}

	var extraLogWriters []io.Writer
	if path := os.Getenv("LOG_FILE"); path != "" {
		fileWriter, err := logger.FileWriter(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to open log file, logging to console only")
		} else {
			extraLogWriters = append(extraLogWriters, fileWriter)
		}
	}
	logger.Initialize(os.Getenv("LOG_LEVEL"), extraLogWriters...)
	log.Info().Msg("APR cell service starting...")

	// Load configuration from environment variables
	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize Database Connection
	dbCfg := state.DBConfig{
		Host: config.DBHost, Port: int(config.DBPort),
		User: config.DBUser, Password: config.DBPassword,
		DBName: config.DBName, SSLMode: config.DBSSLMode,
	}
	if err := state.InitDB(dbCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer state.CloseDB()
	if err := state.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// --- 2. Optional APY cache ---
	var redisClient *redis.Client
	if config.RedisAddr != "" {
		client, err := cache.NewRedisClient(context.Background(), config.RedisAddr, config.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, serving APY quotes straight from the database")
		} else {
			redisClient = client
			defer redisClient.Close()
		}
	}
	apyCache := cache.NewApyCache(redisClient, config.ApyCacheTTL, state.GetApyQuotes)

	translator, err := web.LoadCatalog(config.TranslationsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load translations")
	}

	// --- 3. Serve ---
	webServer := web.NewWebServer(config.WebPort, web.Dependencies{
		Source:        state.Source{},
		ApyTables:     apyCache,
		Resolver:      display.NewResolver(config.MaxLockDuration),
		Translator:    translator,
		VaultSettings: config.GetVaultSettings,
	})

	log.Info().Str("port", config.WebPort).Str("url", "http://localhost:"+config.WebPort).Msg("Starting APR cell API")
	if err := webServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("Web server stopped")
	}
}
