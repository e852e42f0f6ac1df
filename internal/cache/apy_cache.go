/*

This file contains a read-through Redis cache for vault APY tables.

APY quotes change on the indexer's cadence, not per request, so every cell render for the same
vault can share one table for the TTL. Redis being unavailable only costs a database query.

*/

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/elys-network/aprcell/internal/display"
	"github.com/elys-network/aprcell/internal/logger"
	"github.com/elys-network/aprcell/internal/types"
)

var cacheLogger = logger.GetForComponent("apy_cache")

const keyPrefix = "aprcell:apy:"

// Loader fetches the published APY quotes of a vault from the source of truth.
type Loader func(ctx context.Context, vaultKey types.VaultKey) ([]types.ApyQuote, error)

// store is the subset of *redis.Client the cache uses.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ApyCache serves display.ApyTable values, consulting Redis before the Loader.
type ApyCache struct {
	store store
	ttl   time.Duration
	load  Loader
}

// NewApyCache builds a cache in front of load. A nil client disables caching.
func NewApyCache(client *redis.Client, ttl time.Duration, load Loader) *ApyCache {
	c := &ApyCache{ttl: ttl, load: load}
	if client != nil {
		c.store = client
	}
	return c
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,

		PoolSize:     10,
		MinIdleConns: 2,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	cacheLogger.Info().Str("addr", addr).Msg("Connected to Redis")
	return rdb, nil
}

func cacheKey(vaultKey types.VaultKey) string {
	return keyPrefix + string(vaultKey)
}

// Table returns the APY table of a vault.
func (c *ApyCache) Table(ctx context.Context, vaultKey types.VaultKey) (display.ApyTable, error) {
	if c.store != nil {
		if table, ok := c.get(ctx, vaultKey); ok {
			return table, nil
		}
	}

	quotes, err := c.load(ctx, vaultKey)
	if err != nil {
		return display.ApyTable{}, fmt.Errorf("failed to load apy quotes for %s: %w", vaultKey, err)
	}
	table := display.NewApyTable(vaultKey, quotes)

	if c.store != nil {
		c.set(ctx, table)
	}
	return table, nil
}

func (c *ApyCache) get(ctx context.Context, vaultKey types.VaultKey) (display.ApyTable, bool) {
	raw, err := c.store.Get(ctx, cacheKey(vaultKey)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cacheLogger.Warn().Err(err).Str("vaultKey", string(vaultKey)).Msg("Redis read failed, falling back to loader")
		}
		return display.ApyTable{}, false
	}

	var table display.ApyTable
	if err := json.Unmarshal(raw, &table); err != nil {
		cacheLogger.Warn().Err(err).Str("vaultKey", string(vaultKey)).Msg("Discarding undecodable cached APY table")
		return display.ApyTable{}, false
	}
	return table, true
}

func (c *ApyCache) set(ctx context.Context, table display.ApyTable) {
	raw, err := json.Marshal(table)
	if err != nil {
		cacheLogger.Error().Err(err).Msg("Failed to encode APY table")
		return
	}
	if err := c.store.Set(ctx, cacheKey(table.VaultKey), raw, c.ttl).Err(); err != nil {
		cacheLogger.Warn().Err(err).Str("vaultKey", string(table.VaultKey)).Msg("Redis write failed")
	}
}
