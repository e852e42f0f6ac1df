package display

import (
	"net/url"

	"github.com/elys-network/aprcell/internal/types"
	"github.com/elys-network/aprcell/internal/utils"
)

// BuildCalculator assembles the parameters the ROI calculator is opened with.
// Vault pools feed the calculator their uncompounded rawApr; plain pools their apr.
func BuildCalculator(pool types.Pool, view types.CalculatorKind, settings types.VaultSettings, t Translator) types.CalculatorParams {
	apr := pool.Apr
	if pool.IsVault() {
		apr = pool.RawApr
	}

	var staked, wallet string
	if pool.UserData != nil {
		staked = pool.UserData.StakedBalance
		wallet = pool.UserData.StakingTokenBalance
	}

	linkHref := "/swap"
	if pool.StakingToken.Address != "" {
		linkHref = "/swap?" + url.Values{"outputCurrency": {pool.StakingToken.Address}}.Encode()
	}

	params := types.CalculatorParams{
		PoolID:              pool.ID,
		Apr:                 apr,
		EarningTokenPrice:   pool.EarningTokenPrice,
		StakingTokenPrice:   pool.StakingTokenPrice,
		StakingTokenBalance: utils.SumBalances(staked, wallet),
		StakingTokenSymbol:  pool.StakingToken.Symbol,
		EarningTokenSymbol:  pool.EarningToken.Symbol,
		LinkLabel:           t.T("Get %symbol%", map[string]string{"symbol": pool.StakingToken.Symbol}),
		LinkHref:            linkHref,
	}
	if pool.IsVault() {
		params.AutoCompoundFrequency = settings.AutoCompoundFrequency
		params.PerformanceFee = settings.PerformanceFee
		if view == types.CalculatorLocked {
			params.InitialView = 1
		}
	}
	return params
}
