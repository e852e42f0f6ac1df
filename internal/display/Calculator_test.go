package display

import (
	"testing"

	"github.com/elys-network/aprcell/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildCalculator_PlainPool(t *testing.T) {
	pool := types.Pool{
		ID:           7,
		Apr:          rate(15),
		RawApr:       rate(11),
		StakingToken: types.Token{Symbol: "CAKE", Address: "0xabc"},
		EarningToken: types.Token{Symbol: "BNB"},
		UserData:     &types.UserData{StakedBalance: "10", StakingTokenBalance: "2.5"},
	}

	params := BuildCalculator(pool, types.CalculatorPool, types.VaultSettings{AutoCompoundFrequency: 5000}, keyTranslator{})
	assert.Equal(t, 15.0, *params.Apr)
	assert.Equal(t, "12.5", params.StakingTokenBalance)
	assert.Equal(t, "Get CAKE", params.LinkLabel)
	assert.Equal(t, "/swap?outputCurrency=0xabc", params.LinkHref)
	assert.Equal(t, 0, params.AutoCompoundFrequency)
	assert.Equal(t, "BNB", params.EarningTokenSymbol)
}

func TestBuildCalculator_VaultPool(t *testing.T) {
	pool := types.Pool{
		ID:           8,
		Apr:          rate(15),
		RawApr:       rate(11),
		VaultKey:     "cakeVault",
		StakingToken: types.Token{Symbol: "CAKE"},
	}
	settings := types.VaultSettings{AutoCompoundFrequency: 5000, PerformanceFee: 2}

	params := BuildCalculator(pool, types.CalculatorLocked, settings, keyTranslator{})
	assert.Equal(t, 11.0, *params.Apr)
	assert.Equal(t, "/swap", params.LinkHref)
	assert.Equal(t, "0", params.StakingTokenBalance)
	assert.Equal(t, 5000, params.AutoCompoundFrequency)
	assert.Equal(t, 2.0, params.PerformanceFee)
	assert.Equal(t, 1, params.InitialView)

	params = BuildCalculator(pool, types.CalculatorFlexible, settings, keyTranslator{})
	assert.Equal(t, 0, params.InitialView)
}
