/*

This is a custom type for pools which contains the snapshot needed to resolve what APR/APY to display.

*/

package types

type PoolID uint64

// VaultKey identifies a vault pool. The empty key means a plain staking pool.
type VaultKey string

type Pool struct {
	ID                PoolID    `json:"id"`
	StakingToken      Token     `json:"staking_token"`
	EarningToken      Token     `json:"earning_token"`
	IsFinished        bool      `json:"is_finished"`
	Apr               *float64  `json:"apr,omitempty"`     // Percentage, nil while not yet computed
	RawApr            *float64  `json:"raw_apr,omitempty"` // Uncompounded APR, used by vault calculators
	VaultKey          VaultKey  `json:"vault_key,omitempty"`
	StartBlock        uint64    `json:"start_block"`
	EndBlock          uint64    `json:"end_block"`
	EarningTokenPrice *float64  `json:"earning_token_price,omitempty"`
	StakingTokenPrice *float64  `json:"staking_token_price,omitempty"`
	UserData          *UserData `json:"user_data,omitempty"`
}

// UserData is the account-specific part of a pool snapshot. Balances are decimal strings.
type UserData struct {
	StakingTokenBalance string `json:"staking_token_balance,omitempty"` // Wallet balance of the staking token
	StakedBalance       string `json:"staked_balance,omitempty"`        // Amount already staked in the pool
}

// IsVault reports whether the pool is a vault pool (flexible and locked staking).
func (p Pool) IsVault() bool {
	return p.VaultKey != ""
}

// BlockInfo is derived from the pool's start/end block and the current chain height.
type BlockInfo struct {
	ShouldShowBlockCountdown bool   `json:"should_show_block_countdown"`
	BlocksUntilStart         uint64 `json:"blocks_until_start"`
	BlocksRemaining          uint64 `json:"blocks_remaining"`
	HasPoolStarted           bool   `json:"has_pool_started"`
	BlocksToDisplay          uint64 `json:"blocks_to_display"`
}
