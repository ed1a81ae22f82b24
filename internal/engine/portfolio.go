package engine

import (
	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
)

// CurrentValue computes an investment's present value from its
// user-reported real yield: investedAmount x (1 + realYield/100).
// A negative yield produces a value below the invested amount.
func CurrentValue(inv domain.Investment) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(inv.RealYield.Div(hundred))
	return round2(inv.InvestedAmount.Mul(factor))
}

// Profit is the gain or loss of a single investment at its current value.
func Profit(inv domain.Investment) decimal.Decimal {
	return CurrentValue(inv).Sub(inv.InvestedAmount)
}

// View enriches an investment with its derived figures. The formula is
// applied uniformly regardless of status so redeemed records still show
// their final value in listings.
func View(inv domain.Investment) domain.InvestmentView {
	cv := CurrentValue(inv)
	return domain.InvestmentView{
		Investment:   inv,
		CurrentValue: cv,
		Profit:       cv.Sub(inv.InvestedAmount),
	}
}

// Portfolio aggregates a user's investments into portfolio KPIs.
// Only Active records count toward the aggregates; Redeemed ones are
// history. Input order never affects the result.
func Portfolio(investments []domain.Investment) domain.PortfolioSummary {
	p := domain.PortfolioSummary{
		AllocationByType: make(map[string]decimal.Decimal),
	}

	for _, inv := range investments {
		if inv.Status != domain.InvestmentActive {
			continue
		}
		p.ActiveCount++
		p.TotalInvested = p.TotalInvested.Add(inv.InvestedAmount)
		p.CurrentValue = p.CurrentValue.Add(CurrentValue(inv))
		p.AllocationByType[inv.Type] = p.AllocationByType[inv.Type].Add(inv.InvestedAmount)
	}

	p.ProfitOrLoss = p.CurrentValue.Sub(p.TotalInvested)
	return p
}
