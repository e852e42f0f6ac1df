package config

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// Endpoint configuration loaded from environment variables.
// These are populated at startup by the LoadConfig function.
var (
	// DBHost, DBPort, DBUser, DBPassword, DBName and DBSSLMode locate the PostgreSQL snapshot store.
	DBHost     string
	DBPort     int64
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// RedisAddr is the optional Redis endpoint for the APY cache. Empty disables caching.
	RedisAddr string
	// RedisPassword authenticates against RedisAddr.
	RedisPassword string
)

// loadEndpointConfig loads endpoint configuration from environment variables.
// This function is called by LoadConfig() in General.go.
func loadEndpointConfig() error {
	log.Info().Msg("Loading endpoint configuration from environment variables...")

	var err error

	DBHost = getEnvOrDefault("DB_HOST", "localhost")

	DBPort, err = getEnvAsInt64OrDefault("DB_PORT", 5432)
	if err != nil {
		return err
	}
	if DBPort <= 0 || DBPort > 65535 {
		return errors.New("environment variable DB_PORT must be a valid TCP port")
	}

	DBUser, err = getEnv("DB_USER")
	if err != nil {
		return err
	}

	DBPassword = getEnvOrDefault("DB_PASSWORD", "")

	DBName, err = getEnv("DB_NAME")
	if err != nil {
		return err
	}

	DBSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	RedisAddr = getEnvOrDefault("REDIS_ADDR", "")
	RedisPassword = getEnvOrDefault("REDIS_PASSWORD", "")

	log.Debug().
		Str("DBHost", DBHost).
		Int64("DBPort", DBPort).
		Str("DBName", DBName).
		Str("RedisAddr", RedisAddr).
		Msg("Endpoint configuration loaded successfully.")

	return nil
}
