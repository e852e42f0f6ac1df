// ./internal/state/db.go
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/rs/zerolog/log"
)

// DB is a global database connection pool.
var DB *sql.DB

var ErrNotInitialized = errors.New("database not initialized")

// DBConfig holds database connection parameters.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string // "disable", "require", "verify-full", etc.
}

// DSN renders the lib/pq keyword/value connection string.
func (cfg DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// InitDB initializes the database connection pool.
func InitDB(cfg DBConfig) error {
	var err error
	DB, err = sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	err = DB.Ping()
	if err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("Successfully connected to the PostgreSQL database!")
	return nil
}

// CloseDB closes the database connection pool.
func CloseDB() {
	if DB != nil {
		log.Info().Msg("Closing database connection...")
		if err := DB.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}
}

// SchemaSQL creates the snapshot tables. External indexers write these rows; this service only reads them.
const SchemaSQL = `
	CREATE TABLE IF NOT EXISTS pools (
		pool_id BIGINT PRIMARY KEY,
		staking_symbol VARCHAR(64) NOT NULL,
		staking_address VARCHAR(128) NOT NULL DEFAULT '',
		staking_decimals INTEGER NOT NULL DEFAULT 18,
		earning_symbol VARCHAR(64) NOT NULL,
		earning_address VARCHAR(128) NOT NULL DEFAULT '',
		earning_decimals INTEGER NOT NULL DEFAULT 18,
		is_finished BOOLEAN NOT NULL DEFAULT FALSE,
		apr DOUBLE PRECISION,
		raw_apr DOUBLE PRECISION,
		vault_key VARCHAR(64) NOT NULL DEFAULT '',
		start_block BIGINT NOT NULL DEFAULT 0,
		end_block BIGINT NOT NULL DEFAULT 0,
		earning_token_price DOUBLE PRECISION,
		staking_token_price DOUBLE PRECISION,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_pools_vault_key ON pools(vault_key);

	CREATE TABLE IF NOT EXISTS pool_users (
		pool_id BIGINT NOT NULL REFERENCES pools(pool_id) ON DELETE CASCADE,
		account VARCHAR(128) NOT NULL,
		staking_token_balance TEXT NOT NULL DEFAULT '',
		staked_balance TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (pool_id, account)
	);

	CREATE TABLE IF NOT EXISTS vault_users (
		vault_key VARCHAR(64) NOT NULL,
		account VARCHAR(128) NOT NULL,
		user_shares TEXT NOT NULL DEFAULT '',
		locked BOOLEAN NOT NULL DEFAULT FALSE,
		lock_start_time TEXT NOT NULL DEFAULT '',
		lock_end_time TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (vault_key, account)
	);

	CREATE TABLE IF NOT EXISTS vault_apy_quotes (
		vault_key VARCHAR(64) NOT NULL,
		duration_seconds BIGINT NOT NULL,
		flexible_apy TEXT NOT NULL DEFAULT '',
		locked_apy TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (vault_key, duration_seconds)
	);

	-- Single-row table holding the latest indexed block height
	CREATE TABLE IF NOT EXISTS chain_head (
		id INTEGER PRIMARY KEY DEFAULT 1,
		block_number BIGINT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT single_row_check CHECK (id = 1)
	);
`

// DropSchemaSQL removes every table created by SchemaSQL.
const DropSchemaSQL = `
	DROP TABLE IF EXISTS pool_users CASCADE;
	DROP TABLE IF EXISTS pools CASCADE;
	DROP TABLE IF EXISTS vault_users CASCADE;
	DROP TABLE IF EXISTS vault_apy_quotes CASCADE;
	DROP TABLE IF EXISTS chain_head CASCADE;
`

// EnsureSchema applies the necessary DDL to create tables if they don't exist.
func EnsureSchema() error {
	if DB == nil {
		return ErrNotInitialized
	}
	if _, err := DB.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema DDL: %w", err)
	}
	log.Info().Msg("Database schema ensured.")
	return nil
}

// ResetSchema drops and recreates all tables.
func ResetSchema() error {
	if DB == nil {
		return ErrNotInitialized
	}
	if _, err := DB.Exec(DropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	log.Warn().Msg("Dropped all snapshot tables")
	return EnsureSchema()
}

// TestDBConnection tests if the database connection is healthy
func TestDBConnection(ctx context.Context) error {
	if DB == nil {
		return ErrNotInitialized
	}

	// Use a short timeout context for health checks
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
