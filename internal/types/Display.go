/*

This file contains the result of display-state resolution and the view model rendered from it.

*/

package types

// DisplayKind tags the variant held by a DisplayState.
type DisplayKind string

const (
	DisplayPending    DisplayKind = "PENDING"     // Data not ready, show a skeleton
	DisplayNotStarted DisplayKind = "NOT_STARTED" // Pool has not started and uses a countdown, show "-"
	DisplaySingleRate DisplayKind = "SINGLE_RATE" // One rate
	DisplayDualRate   DisplayKind = "DUAL_RATE"   // Flexible and locked rates side by side
)

// DisplayState is a tagged variant. Only the fields of the active Kind are meaningful.
// The struct is comparable so identical inputs yield == results.
type DisplayState struct {
	Kind DisplayKind `json:"kind"`

	// SINGLE_RATE
	Value       float64 `json:"value"`
	Interactive bool    `json:"interactive"`

	// DUAL_RATE
	Flexible float64 `json:"flexible,omitempty"`
	Locked   float64 `json:"locked,omitempty"`

	// Vault pools only: the position the state was resolved for, also set on PENDING
	Position VaultPosition `json:"position"`
}

func Pending() DisplayState {
	return DisplayState{Kind: DisplayPending}
}

func NotStarted() DisplayState {
	return DisplayState{Kind: DisplayNotStarted}
}

func SingleRate(value float64, interactive bool) DisplayState {
	return DisplayState{Kind: DisplaySingleRate, Value: value, Interactive: interactive}
}

func DualRate(flexible, locked float64) DisplayState {
	return DisplayState{Kind: DisplayDualRate, Flexible: flexible, Locked: locked}
}

// CalculatorKind names which ROI calculator a cell button opens.
type CalculatorKind string

const (
	CalculatorNone     CalculatorKind = ""
	CalculatorPool     CalculatorKind = "pool"
	CalculatorFlexible CalculatorKind = "flexible"
	CalculatorLocked   CalculatorKind = "locked"
)

// CellEntry is one labelled rate inside an APR cell.
type CellEntry struct {
	Label      string         `json:"label"`
	Prefix     string         `json:"prefix,omitempty"` // e.g., "Up to"
	Text       string         `json:"text"`             // e.g., "12.34%" or "-"
	Skeleton   bool           `json:"skeleton"`
	Disabled   bool           `json:"disabled"`
	Calculator CalculatorKind `json:"calculator,omitempty"` // Empty when no calculator button is shown
}

// Cell is the rendered APR/APY cell for one pool.
type Cell struct {
	PoolID  PoolID       `json:"pool_id"`
	State   DisplayState `json:"state"`
	Entries []CellEntry  `json:"entries"`
}

// CalculatorParams is what the ROI calculator modal is opened with.
type CalculatorParams struct {
	PoolID                PoolID   `json:"pool_id"`
	Apr                   *float64 `json:"apr,omitempty"`
	EarningTokenPrice     *float64 `json:"earning_token_price,omitempty"`
	StakingTokenPrice     *float64 `json:"staking_token_price,omitempty"`
	StakingTokenBalance   string   `json:"staking_token_balance"`
	StakingTokenSymbol    string   `json:"staking_token_symbol"`
	EarningTokenSymbol    string   `json:"earning_token_symbol"`
	LinkLabel             string   `json:"link_label"`
	LinkHref              string   `json:"link_href"`
	AutoCompoundFrequency int      `json:"auto_compound_frequency"`
	PerformanceFee        float64  `json:"performance_fee"`
	InitialView           int      `json:"initial_view"` // 0 flexible, 1 locked
}

// VaultSettings is the static per-vault configuration shown in the calculator.
type VaultSettings struct {
	AutoCompoundFrequency int     `json:"auto_compound_frequency"`
	PerformanceFee        float64 `json:"performance_fee"`
}
