package display

import (
	"sort"

	"github.com/elys-network/aprcell/internal/types"
)

// ApyTable is the set of APY quotes published for one vault, ordered by duration.
// It implements ApyOracle with a floor lookup: the quote with the greatest duration
// not above the requested one wins.
type ApyTable struct {
	VaultKey types.VaultKey   `json:"vault_key"`
	Quotes   []types.ApyQuote `json:"quotes"`
}

// NewApyTable copies and sorts the quotes by ascending duration.
func NewApyTable(vaultKey types.VaultKey, quotes []types.ApyQuote) ApyTable {
	sorted := make([]types.ApyQuote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DurationSeconds < sorted[j].DurationSeconds
	})
	return ApyTable{VaultKey: vaultKey, Quotes: sorted}
}

func (t ApyTable) VaultApy(durationSeconds int64) types.VaultApy {
	idx := sort.Search(len(t.Quotes), func(i int) bool {
		return t.Quotes[i].DurationSeconds > durationSeconds
	})
	if idx == 0 {
		return types.VaultApy{}
	}
	q := t.Quotes[idx-1]
	return types.VaultApy{FlexibleApy: q.FlexibleApy, LockedApy: q.LockedApy}
}
