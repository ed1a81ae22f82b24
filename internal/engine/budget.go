package engine

import (
	"fmt"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
)

// Budget breaks one period's income into the 50/30/20 buckets:
// needs (fixed expenses), wants (variable expenses) and investments.
// With zero income all targets are zero and no bucket is flagged
// exceeded.
func Budget(s domain.DashboardSummary) domain.BudgetAllocation {
	invested := round2(s.PercentInvested.Div(hundred).Mul(s.TotalIncome))

	return domain.BudgetAllocation{
		TotalIncome: s.TotalIncome,
		Needs:       bucket("Needs", needsFraction, s.TotalIncome, s.FixedExpenses),
		Wants:       bucket("Wants", wantsFraction, s.TotalIncome, s.VariableExpenses),
		Investments: bucket("Investments", investmentsFraction, s.TotalIncome, invested),
	}
}

func bucket(name string, fraction, totalIncome, actual decimal.Decimal) domain.BudgetBucket {
	target := round2(totalIncome.Mul(fraction))
	achieved := percentOf(actual, target)
	gap := target.Sub(actual)

	b := domain.BudgetBucket{
		Name:            name,
		TargetFraction:  fraction,
		Target:          target,
		Actual:          actual,
		AchievedPercent: achieved,
		Exceeded:        achieved.GreaterThan(hundred),
		Gap:             gap,
	}
	b.Suggestion = suggestion(b)
	return b
}

func suggestion(b domain.BudgetBucket) string {
	switch {
	case b.Exceeded:
		return fmt.Sprintf("Over target: reduce %s spending by %s", b.Name, b.Gap.Neg().StringFixed(2))
	case b.Name == "Investments" && b.Gap.IsPositive():
		return fmt.Sprintf("You can invest %s more this month", b.Gap.StringFixed(2))
	case b.Gap.IsPositive():
		return fmt.Sprintf("Surplus of %s in %s", b.Gap.StringFixed(2), b.Name)
	default:
		return "On target"
	}
}
