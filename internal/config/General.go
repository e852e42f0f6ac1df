package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// AppConfig holds all application configuration loaded from environment variables.
// These are populated at startup by the LoadConfig function.
var (
	// WebPort is the port the HTTP API listens on.
	WebPort string

	// MaxLockDuration is the longest vault lock in seconds. Users without a vault position
	// are shown the APY for this duration.
	MaxLockDuration int64

	// ApyCacheTTL is how long a vault's APY table may be served from Redis.
	ApyCacheTTL time.Duration

	// TranslationsFile optionally points at a JSON object of UI string overrides.
	TranslationsFile string
)

const (
	defaultWebPort         = "8080"
	defaultMaxLockDuration = int64(31536000)
	defaultApyCacheTTL     = 30 * time.Second
)

// LoadConfig loads configuration from environment variables and sets the global config vars.
// Database settings are required; everything else has a default.
func LoadConfig() error {
	log.Info().Msg("Loading application configuration from environment variables...")

	var err error

	WebPort = getEnvOrDefault("WEB_PORT", defaultWebPort)

	MaxLockDuration, err = getEnvAsInt64OrDefault("MAX_LOCK_DURATION", defaultMaxLockDuration)
	if err != nil {
		return err
	}
	if MaxLockDuration <= 0 {
		return errors.New("environment variable MAX_LOCK_DURATION must be positive")
	}

	ApyCacheTTL, err = getEnvAsDurationOrDefault("APY_CACHE_TTL", defaultApyCacheTTL)
	if err != nil {
		return err
	}

	TranslationsFile = getEnvOrDefault("TRANSLATIONS_FILE", "")

	// Load endpoint configuration
	if err := loadEndpointConfig(); err != nil {
		return err
	}

	log.Debug().
		Str("WebPort", WebPort).
		Int64("MaxLockDuration", MaxLockDuration).
		Dur("ApyCacheTTL", ApyCacheTTL).
		Msg("Configuration loaded successfully.")

	return nil
}

// getEnv retrieves a string environment variable. Returns error if not set.
func getEnv(key string) (string, error) {
	if value, exists := os.LookupEnv(key); exists {
		return value, nil
	}
	return "", errors.New("environment variable " + key + " is required but not set")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64OrDefault retrieves an environment variable as an int64. Returns error if set but invalid.
func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	valueStr := getEnvOrDefault(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid int64, got: " + valueStr)
	}
	return value, nil
}

// getEnvAsDurationOrDefault retrieves an environment variable as a Go duration ("30s", "5m").
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnvOrDefault(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be a valid duration, got: " + valueStr)
	}
	return value, nil
}
