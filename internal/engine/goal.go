package engine

import (
	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
)

// Progress derives a goal's progress figures. ProgressPercent is not
// clamped at 100 (an overfunded goal reports the true value; display
// layers clamp the bar, not the engine). A goal with no monthly
// contribution and an unmet target has no bounded horizon: the months
// figure is omitted and Unbounded is set instead of using a sentinel
// number.
func Progress(g domain.Goal) domain.GoalProgress {
	p := domain.GoalProgress{
		Goal:            g,
		ProgressPercent: percentOf(g.CurrentAmount, g.TargetAmount),
	}

	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	p.Remaining = remaining

	p.Achieved = p.ProgressPercent.GreaterThanOrEqual(decimal.NewFromInt(100))

	switch {
	case remaining.IsZero():
		months := int64(0)
		p.MonthsRemaining = &months
	case g.MonthlyContribution.IsPositive():
		months := remaining.Div(g.MonthlyContribution).Ceil().IntPart()
		p.MonthsRemaining = &months
	default:
		p.Unbounded = true
	}

	return p
}
