package engine_test

import (
	"testing"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/engine"
)

func investment(typ, status, invested, realYield string) domain.Investment {
	return domain.Investment{
		Type:           typ,
		Description:    "position",
		InvestedAmount: d(invested),
		RealYield:      d(realYield),
		Status:         status,
	}
}

func TestCurrentValue(t *testing.T) {
	inv := investment(domain.InvestmentCDB, domain.InvestmentActive, "5000", "6.2")

	cv := engine.CurrentValue(inv)
	if !cv.Equal(d("5310")) {
		t.Errorf("CurrentValue = %s, want 5310", cv)
	}
	if profit := engine.Profit(inv); !profit.Equal(d("310")) {
		t.Errorf("Profit = %s, want 310", profit)
	}
}

func TestCurrentValueNegativeYield(t *testing.T) {
	inv := investment(domain.InvestmentCrypto, domain.InvestmentActive, "1000", "-12.5")

	if cv := engine.CurrentValue(inv); !cv.Equal(d("875")) {
		t.Errorf("CurrentValue = %s, want 875", cv)
	}
	if profit := engine.Profit(inv); !profit.Equal(d("-125")) {
		t.Errorf("Profit = %s, want -125", profit)
	}
}

func TestPortfolioExcludesRedeemed(t *testing.T) {
	investments := []domain.Investment{
		investment(domain.InvestmentCDB, domain.InvestmentActive, "5000", "6.2"),
		investment(domain.InvestmentStocks, domain.InvestmentActive, "2000", "10"),
		investment(domain.InvestmentFIIs, domain.InvestmentRedeemed, "9999", "50"),
	}

	p := engine.Portfolio(investments)

	if p.ActiveCount != 2 {
		t.Errorf("ActiveCount = %d, want 2", p.ActiveCount)
	}
	if !p.TotalInvested.Equal(d("7000")) {
		t.Errorf("TotalInvested = %s, want 7000", p.TotalInvested)
	}
	if !p.CurrentValue.Equal(d("7510")) {
		t.Errorf("CurrentValue = %s, want 7510", p.CurrentValue)
	}
	if !p.ProfitOrLoss.Equal(d("510")) {
		t.Errorf("ProfitOrLoss = %s, want 510", p.ProfitOrLoss)
	}
	if _, ok := p.AllocationByType[domain.InvestmentFIIs]; ok {
		t.Error("redeemed investment leaked into AllocationByType")
	}
	if !p.AllocationByType[domain.InvestmentCDB].Equal(d("5000")) {
		t.Errorf("AllocationByType[CDB] = %s, want 5000", p.AllocationByType[domain.InvestmentCDB])
	}
}

func TestPortfolioEmpty(t *testing.T) {
	p := engine.Portfolio(nil)

	if p.ActiveCount != 0 || !p.TotalInvested.IsZero() || !p.ProfitOrLoss.IsZero() {
		t.Errorf("empty portfolio should be zeroed, got %+v", p)
	}
}

func TestViewKeepsRedeemedFigures(t *testing.T) {
	inv := investment(domain.InvestmentSavings, domain.InvestmentRedeemed, "800", "5")

	v := engine.View(inv)
	if !v.CurrentValue.Equal(d("840")) {
		t.Errorf("CurrentValue = %s, want 840", v.CurrentValue)
	}
	if !v.Profit.Equal(d("40")) {
		t.Errorf("Profit = %s, want 40", v.Profit)
	}
}
