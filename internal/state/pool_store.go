package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/elys-network/aprcell/internal/types"
)

var ErrPoolNotFound = errors.New("pool not found")

const poolColumns = `
	p.pool_id, p.staking_symbol, p.staking_address, p.staking_decimals,
	p.earning_symbol, p.earning_address, p.earning_decimals,
	p.is_finished, p.apr, p.raw_apr, p.vault_key, p.start_block, p.end_block,
	p.earning_token_price, p.staking_token_price,
	u.staking_token_balance, u.staked_balance`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPool(row rowScanner) (types.Pool, error) {
	var (
		p                            types.Pool
		vaultKey                     string
		apr, rawApr                  sql.NullFloat64
		earningPrice, stakingPrice   sql.NullFloat64
		walletBalance, stakedBalance sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.StakingToken.Symbol, &p.StakingToken.Address, &p.StakingToken.Decimals,
		&p.EarningToken.Symbol, &p.EarningToken.Address, &p.EarningToken.Decimals,
		&p.IsFinished, &apr, &rawApr, &vaultKey, &p.StartBlock, &p.EndBlock,
		&earningPrice, &stakingPrice,
		&walletBalance, &stakedBalance,
	)
	if err != nil {
		return types.Pool{}, err
	}

	p.VaultKey = types.VaultKey(vaultKey)
	p.Apr = nullableFloat(apr)
	p.RawApr = nullableFloat(rawApr)
	p.EarningTokenPrice = nullableFloat(earningPrice)
	p.StakingTokenPrice = nullableFloat(stakingPrice)
	if walletBalance.Valid || stakedBalance.Valid {
		p.UserData = &types.UserData{
			StakingTokenBalance: walletBalance.String,
			StakedBalance:       stakedBalance.String,
		}
	}
	return p, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// GetPool loads one pool, joined with the account's balances when account is non-empty.
func GetPool(ctx context.Context, id types.PoolID, account string) (types.Pool, error) {
	if DB == nil {
		return types.Pool{}, ErrNotInitialized
	}

	query := `SELECT` + poolColumns + `
		FROM pools p
		LEFT JOIN pool_users u ON u.pool_id = p.pool_id AND u.account = $2
		WHERE p.pool_id = $1;`

	pool, err := scanPool(DB.QueryRowContext(ctx, query, uint64(id), account))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Pool{}, fmt.Errorf("%w: %d", ErrPoolNotFound, id)
		}
		return types.Pool{}, fmt.Errorf("failed to load pool %d: %w", id, err)
	}
	return pool, nil
}

// ListPools loads every pool ordered by id, joined with the account's balances when account is non-empty.
func ListPools(ctx context.Context, account string) ([]types.Pool, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	query := `SELECT` + poolColumns + `
		FROM pools p
		LEFT JOIN pool_users u ON u.pool_id = p.pool_id AND u.account = $1
		ORDER BY p.pool_id;`

	rows, err := DB.QueryContext(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("failed to query pools: %w", err)
	}
	defer rows.Close()

	var pools []types.Pool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			stateLogger.Error().Err(err).Msg("Failed to scan pool row")
			continue // Skip this row and continue with others
		}
		pools = append(pools, pool)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pools: %w", err)
	}
	return pools, nil
}
