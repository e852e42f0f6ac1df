/*

This file reads the chain head written by the block indexer.
The table holds a single row so the height survives restarts of either side.

*/

package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetCurrentBlock returns the latest indexed block height, or nil when none has been recorded yet.
func GetCurrentBlock(ctx context.Context) (*uint64, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	var block uint64
	err := DB.QueryRowContext(ctx, `SELECT block_number FROM chain_head WHERE id = 1;`).Scan(&block)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			stateLogger.Debug().Msg("No chain head recorded yet")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current block: %w", err)
	}
	return &block, nil
}
