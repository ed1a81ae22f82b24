package engine

import "github.com/joaquimoiio/financas-go/internal/domain"

// Simulate computes how much of one period's income is still available
// to invest after fixed and variable expenses, a 10% emergency reserve,
// and what was already invested this month. Each step feeds the next;
// intermediate values may go negative and are reported as-is so the
// caller can warn about over-investment.
func Simulate(s domain.DashboardSummary) domain.InvestmentSimulation {
	reserve := round2(s.TotalIncome.Mul(reserveFraction))
	available := s.TotalIncome.Sub(s.FixedExpenses).Sub(s.VariableExpenses).Sub(reserve)
	alreadyInvested := round2(s.PercentInvested.Div(hundred).Mul(s.TotalIncome))
	still := available.Sub(alreadyInvested)

	return domain.InvestmentSimulation{
		TotalIncome:       s.TotalIncome,
		EmergencyReserve:  reserve,
		AvailableToInvest: available,
		AlreadyInvested:   alreadyInvested,
		StillInvestable:   still,
		OverInvested:      still.IsNegative(),
	}
}
