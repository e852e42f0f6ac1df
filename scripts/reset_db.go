package main

import (
	"os"

	"github.com/elys-network/aprcell/internal/config"
	"github.com/elys-network/aprcell/internal/logger"
	"github.com/elys-network/aprcell/internal/state"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables from .env file before anything reads them
	envErr := godotenv.Load()

	// Initialize logger
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Initialize(logLevel)
	log.Info().Msg("Starting database reset script...")
	if envErr != nil {
		log.Warn().Msg("Warning: .env file not found or error loading .env file. Relying on OS environment variables.")
	}

	// Same validation as the service: a malformed DB_PORT is fatal, not silently defaulted
	if err := config.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	dbCfg := state.DBConfig{
		Host:     config.DBHost,
		Port:     int(config.DBPort),
		User:     config.DBUser,
		Password: config.DBPassword,
		DBName:   config.DBName,
		SSLMode:  config.DBSSLMode,
	}
	if err := state.InitDB(dbCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer state.CloseDB()

	if err := state.ResetSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to reset database schema")
	}

	log.Info().Msg("Database reset complete: pools, pool_users, vault_users, vault_apy_quotes and chain_head recreated.")
}
