/*

This file derives a pool's block countdown information from its start/end block and the chain height.

*/

package analyzer

import (
	"github.com/elys-network/aprcell/internal/types"
)

// GetPoolBlockInfo computes where the chain head sits relative to the pool's start and end block.
// A nil currentBlock means the height is not known yet; the pool is then treated as not started.
func GetPoolBlockInfo(pool types.Pool, currentBlock *uint64) types.BlockInfo {
	info := types.BlockInfo{
		ShouldShowBlockCountdown: !pool.IsFinished && pool.StartBlock > 0 && pool.EndBlock > 0,
	}
	if currentBlock == nil {
		return info
	}

	info.BlocksUntilStart = blocksUntil(pool.StartBlock, *currentBlock)
	info.BlocksRemaining = blocksUntil(pool.EndBlock, *currentBlock)
	info.HasPoolStarted = info.BlocksUntilStart == 0 && info.BlocksRemaining > 0

	if info.HasPoolStarted {
		info.BlocksToDisplay = info.BlocksRemaining
	} else {
		info.BlocksToDisplay = info.BlocksUntilStart
	}
	return info
}

// blocksUntil is max(target - current, 0) without unsigned underflow.
func blocksUntil(target, current uint64) uint64 {
	if target <= current {
		return 0
	}
	return target - current
}
