// Package engine implements the financial aggregation and derivation
// computations: dashboard totals, the 50/30/20 budget allocation, the
// investable-remainder simulation, portfolio figures and goal progress.
//
// Every function is a pure, synchronous transformation from a snapshot
// of records to a summary value. The engine performs no I/O, holds no
// state, and receives user identity and period scoping from the caller
// through its inputs.
package engine

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)

	needsFraction       = decimal.RequireFromString("0.5")
	wantsFraction       = decimal.RequireFromString("0.3")
	investmentsFraction = decimal.RequireFromString("0.2")
	reserveFraction     = decimal.RequireFromString("0.1")
)

// round2 applies the fixed rounding policy for derived values:
// two decimal places, round half to even. Plain sums are kept exact
// and never pass through here.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// percentOf returns part/whole x 100 rounded to two places, or zero
// when whole is not positive. All ratio computations share this guard
// so a zero denominator can never surface as NaN or a panic.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return round2(part.Div(whole).Mul(hundred))
}
