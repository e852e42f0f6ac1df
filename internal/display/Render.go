/*

This file turns a resolved DisplayState into the view model of an APR cell. It is a plain
pattern match over the state kind; all decisions about which rate to show were already made
by the resolver.

*/

package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/elys-network/aprcell/internal/types"
)

// Translator looks up a UI string, substituting %name% placeholders from params.
type Translator interface {
	T(key string, params map[string]string) string
}

// RenderOptions mirrors the presentation switches of the cell.
type RenderOptions struct {
	ShowIcon bool // Show the calculator button on plain pools
	Compact  bool // Mobile layout: no calculator buttons on the dual flexible/locked entries
}

var ratePrinter = message.NewPrinter(language.English)

// FormatRate renders a percentage with two decimals and grouped thousands, e.g. "1,234.50%".
func FormatRate(value float64) string {
	return ratePrinter.Sprintf("%.2f%%", value)
}

// RenderCell builds the cell entries for a pool from its resolved state.
func RenderCell(pool types.Pool, state types.DisplayState, t Translator, opts RenderOptions) types.Cell {
	cell := types.Cell{PoolID: pool.ID, State: state}

	switch state.Kind {
	case types.DisplayPending:
		if pool.IsVault() && state.Position == types.VaultPositionNone {
			cell.Entries = []types.CellEntry{
				{Label: t.T("Flexible APY", nil), Skeleton: true},
				{Label: t.T("Locked APY", nil), Prefix: t.T("Up to", nil), Skeleton: true},
			}
		} else {
			cell.Entries = []types.CellEntry{{Label: rateLabel(pool, t), Skeleton: true}}
		}

	case types.DisplayNotStarted:
		cell.Entries = []types.CellEntry{{Label: rateLabel(pool, t), Text: "-"}}

	case types.DisplaySingleRate:
		entry := types.CellEntry{
			Label:    rateLabel(pool, t),
			Text:     FormatRate(state.Value),
			Disabled: !state.Interactive,
		}
		switch {
		case pool.IsVault() && state.Position > types.VaultPositionFlexible:
			entry.Calculator = types.CalculatorLocked
		case pool.IsVault():
			entry.Calculator = types.CalculatorFlexible
		case state.Interactive && opts.ShowIcon:
			entry.Calculator = types.CalculatorPool
		}
		cell.Entries = []types.CellEntry{entry}

	case types.DisplayDualRate:
		flexible := types.CellEntry{Label: t.T("Flexible APY", nil), Text: FormatRate(state.Flexible)}
		locked := types.CellEntry{Label: t.T("Locked APY", nil), Prefix: t.T("Up to", nil), Text: FormatRate(state.Locked)}
		if !opts.Compact {
			flexible.Calculator = types.CalculatorFlexible
			locked.Calculator = types.CalculatorLocked
		}
		cell.Entries = []types.CellEntry{flexible, locked}
	}

	return cell
}

func rateLabel(pool types.Pool, t Translator) string {
	if pool.IsVault() {
		return t.T("APY", nil)
	}
	return t.T("APR", nil)
}
