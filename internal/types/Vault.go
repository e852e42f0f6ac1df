/*

This file contains the types describing a user's relationship to a vault pool and the APY quotes for it.

*/

package types

import "fmt"

// VaultUserData is the per-account vault snapshot. Times are unix seconds encoded as strings.
type VaultUserData struct {
	UserShares    string `json:"user_shares,omitempty"`
	Locked        bool   `json:"locked"`
	LockStartTime string `json:"lock_start_time,omitempty"`
	LockEndTime   string `json:"lock_end_time,omitempty"`
}

// VaultPosition classifies a user's stake in a vault. Values are ordered: None < Flexible < Locked.
type VaultPosition int

const (
	VaultPositionNone VaultPosition = iota
	VaultPositionFlexible
	VaultPositionLocked
)

func (p VaultPosition) String() string {
	switch p {
	case VaultPositionFlexible:
		return "FLEXIBLE"
	case VaultPositionLocked:
		return "LOCKED"
	default:
		return "NONE"
	}
}

func (p VaultPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *VaultPosition) UnmarshalText(text []byte) error {
	switch string(text) {
	case "FLEXIBLE":
		*p = VaultPositionFlexible
	case "LOCKED":
		*p = VaultPositionLocked
	case "NONE", "":
		*p = VaultPositionNone
	default:
		return fmt.Errorf("unknown vault position %q", text)
	}
	return nil
}

// VaultApy holds string-encoded decimal rates. An empty string means the rate is not available.
type VaultApy struct {
	FlexibleApy string `json:"flexible_apy,omitempty"`
	LockedApy   string `json:"locked_apy,omitempty"`
}

// ApyQuote is one published APY pair for a given lock duration.
type ApyQuote struct {
	VaultKey        VaultKey `json:"vault_key"`
	DurationSeconds int64    `json:"duration_seconds"`
	FlexibleApy     string   `json:"flexible_apy"`
	LockedApy       string   `json:"locked_apy"`
}
