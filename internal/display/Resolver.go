/*

This file contains the display-state resolver: a pure function deciding which APR/APY value(s)
a pool cell shows, given the pool snapshot, the user's vault snapshot and the chain height.

*/

package display

import (
	"math"

	"github.com/elys-network/aprcell/internal/analyzer"
	"github.com/elys-network/aprcell/internal/types"
	"github.com/elys-network/aprcell/internal/utils"
)

// DefaultMaxLockDuration is one year in seconds, the longest lock a vault accepts.
const DefaultMaxLockDuration int64 = 365 * 24 * 60 * 60

// ApyOracle returns the vault APY pair for a lock duration in seconds.
type ApyOracle interface {
	VaultApy(durationSeconds int64) types.VaultApy
}

// ApyOracleFunc adapts a plain function to ApyOracle.
type ApyOracleFunc func(durationSeconds int64) types.VaultApy

func (f ApyOracleFunc) VaultApy(durationSeconds int64) types.VaultApy {
	return f(durationSeconds)
}

// Resolver holds the only configuration the resolution depends on.
type Resolver struct {
	MaxLockDuration int64
}

// NewResolver returns a Resolver, falling back to DefaultMaxLockDuration for non-positive input.
func NewResolver(maxLockDuration int64) Resolver {
	if maxLockDuration <= 0 {
		maxLockDuration = DefaultMaxLockDuration
	}
	return Resolver{MaxLockDuration: maxLockDuration}
}

// Resolve computes the DisplayState for one pool. It performs no I/O; apy is only consulted
// for vault pools and may be nil for plain pools.
func (r Resolver) Resolve(pool types.Pool, userData *types.VaultUserData, currentBlock *uint64, apy ApyOracle) types.DisplayState {
	if !pool.IsVault() {
		return r.resolvePool(pool, currentBlock)
	}
	return r.resolveVault(userData, apy)
}

func (r Resolver) resolvePool(pool types.Pool, currentBlock *uint64) types.DisplayState {
	var value float64
	if !pool.IsFinished {
		if !utils.ValidRate(pool.Apr) {
			return types.Pending()
		}
		value = *pool.Apr
	}

	blockInfo := analyzer.GetPoolBlockInfo(pool, currentBlock)
	if !blockInfo.HasPoolStarted && blockInfo.ShouldShowBlockCountdown {
		return types.NotStarted()
	}
	return types.SingleRate(value, !pool.IsFinished)
}

func (r Resolver) resolveVault(userData *types.VaultUserData, apy ApyOracle) types.DisplayState {
	position := analyzer.GetVaultPosition(userData)
	pending := types.Pending()
	pending.Position = position
	if apy == nil {
		return pending
	}

	if position == types.VaultPositionNone {
		rates := apy.VaultApy(r.MaxLockDuration)
		flexible, okFlexible := parseApy(rates.FlexibleApy)
		locked, okLocked := parseApy(rates.LockedApy)
		if !okFlexible || !okLocked {
			return pending
		}
		return types.DualRate(flexible, locked)
	}

	duration := r.MaxLockDuration
	if position > types.VaultPositionFlexible {
		duration = analyzer.LockDurationSeconds(userData)
	}
	rates := apy.VaultApy(duration)

	selected := rates.FlexibleApy
	if position > types.VaultPositionFlexible {
		selected = rates.LockedApy
	}
	value, ok := parseApy(selected)
	if !ok {
		return pending
	}

	state := types.SingleRate(value, true)
	state.Position = position
	return state
}

func parseApy(s string) (float64, bool) {
	f, err := utils.ParseRate(s)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
