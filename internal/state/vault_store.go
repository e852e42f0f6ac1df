package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/elys-network/aprcell/internal/types"
)

// GetVaultUserData loads an account's vault snapshot. It returns nil, nil when the account
// is empty or has never interacted with the vault.
func GetVaultUserData(ctx context.Context, vaultKey types.VaultKey, account string) (*types.VaultUserData, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}
	if account == "" {
		return nil, nil
	}

	query := `
		SELECT user_shares, locked, lock_start_time, lock_end_time
		FROM vault_users
		WHERE vault_key = $1 AND account = $2;`

	var ud types.VaultUserData
	err := DB.QueryRowContext(ctx, query, string(vaultKey), account).
		Scan(&ud.UserShares, &ud.Locked, &ud.LockStartTime, &ud.LockEndTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load vault user data for %s: %w", vaultKey, err)
	}
	return &ud, nil
}

// GetApyQuotes loads every published APY quote of a vault, ordered by duration.
func GetApyQuotes(ctx context.Context, vaultKey types.VaultKey) ([]types.ApyQuote, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	query := `
		SELECT duration_seconds, flexible_apy, locked_apy
		FROM vault_apy_quotes
		WHERE vault_key = $1
		ORDER BY duration_seconds;`

	rows, err := DB.QueryContext(ctx, query, string(vaultKey))
	if err != nil {
		return nil, fmt.Errorf("failed to query apy quotes for %s: %w", vaultKey, err)
	}
	defer rows.Close()

	var quotes []types.ApyQuote
	for rows.Next() {
		q := types.ApyQuote{VaultKey: vaultKey}
		if err := rows.Scan(&q.DurationSeconds, &q.FlexibleApy, &q.LockedApy); err != nil {
			return nil, fmt.Errorf("failed to scan apy quote for %s: %w", vaultKey, err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate apy quotes for %s: %w", vaultKey, err)
	}
	return quotes, nil
}
