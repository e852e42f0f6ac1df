/*

This file contains the static configuration of the known vault pools.

A vault key missing here still resolves and renders; its calculator simply shows no
auto-compounding and no performance fee.

*/

package config

import (
	"github.com/elys-network/aprcell/internal/types"
)

var VaultPoolConfig = map[types.VaultKey]types.VaultSettings{
	"cakeVaultV1":           {AutoCompoundFrequency: 5000, PerformanceFee: 2},
	"cakeVault":             {AutoCompoundFrequency: 5000, PerformanceFee: 2},
	"cakeFlexibleSideVault": {AutoCompoundFrequency: 5000, PerformanceFee: 2},
	"ifoPool":               {AutoCompoundFrequency: 1, PerformanceFee: 2},
}

// GetVaultSettings returns the settings for a vault key, or the zero value when unknown.
func GetVaultSettings(key types.VaultKey) types.VaultSettings {
	return VaultPoolConfig[key]
}
