package analyzer

import (
	"github.com/elys-network/aprcell/internal/types"
	"github.com/elys-network/aprcell/internal/utils"
)

// GetVaultPosition classifies a user's vault snapshot.
// A locked stake is Locked, any other positive share balance is Flexible, everything else is None.
func GetVaultPosition(userData *types.VaultUserData) types.VaultPosition {
	if userData == nil {
		return types.VaultPositionNone
	}
	if userData.Locked {
		return types.VaultPositionLocked
	}
	shares, err := utils.ParseDecimal(userData.UserShares)
	if err == nil && shares.IsPositive() {
		return types.VaultPositionFlexible
	}
	return types.VaultPositionNone
}

// LockDurationSeconds returns lockEndTime - lockStartTime, or 0 when the times are missing,
// out of range or inverted. Both times are non-negative, so the difference cannot overflow.
func LockDurationSeconds(userData *types.VaultUserData) int64 {
	if userData == nil {
		return 0
	}
	d := utils.ParseUnixSeconds(userData.LockEndTime) - utils.ParseUnixSeconds(userData.LockStartTime)
	if d < 0 {
		return 0
	}
	return d
}
