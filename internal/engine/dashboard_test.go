package engine_test

import (
	"testing"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/engine"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func income(kind, amount string) domain.Income {
	return domain.Income{Source: "Salary", Kind: kind, Amount: d(amount)}
}

func expense(category, kind, status, amount string) domain.Expense {
	return domain.Expense{
		Description:   "entry",
		Category:      category,
		Kind:          kind,
		PaymentMethod: domain.PaymentPix,
		Status:        status,
		Amount:        d(amount),
	}
}

func TestDashboardTotals(t *testing.T) {
	incomes := []domain.Income{
		income(domain.KindFixed, "4000"),
		income(domain.KindVariable, "1000"),
	}
	expenses := []domain.Expense{
		expense(domain.CategoryHousing, domain.KindFixed, domain.StatusPaid, "1500"),
		expense(domain.CategoryFood, domain.KindVariable, domain.StatusPaid, "800"),
		expense(domain.CategoryLeisure, domain.KindVariable, domain.StatusPending, "200"),
		expense(domain.CategoryInvestments, domain.KindFixed, domain.StatusPaid, "500"),
	}

	s := engine.Dashboard(3, 2026, incomes, expenses)

	if !s.TotalIncome.Equal(d("5000")) {
		t.Errorf("TotalIncome = %s, want 5000", s.TotalIncome)
	}
	if !s.TotalExpenses.Equal(d("3000")) {
		t.Errorf("TotalExpenses = %s, want 3000", s.TotalExpenses)
	}
	if !s.Balance.Equal(d("2000")) {
		t.Errorf("Balance = %s, want 2000", s.Balance)
	}
	if !s.FixedExpenses.Equal(d("2000")) {
		t.Errorf("FixedExpenses = %s, want 2000", s.FixedExpenses)
	}
	if !s.VariableExpenses.Equal(d("1000")) {
		t.Errorf("VariableExpenses = %s, want 1000", s.VariableExpenses)
	}
	if !s.PendingExpenses.Equal(d("200")) {
		t.Errorf("PendingExpenses = %s, want 200", s.PendingExpenses)
	}
	if !s.PercentExpenses.Equal(d("60")) {
		t.Errorf("PercentExpenses = %s, want 60", s.PercentExpenses)
	}
	if !s.PercentInvested.Equal(d("10")) {
		t.Errorf("PercentInvested = %s, want 10", s.PercentInvested)
	}
}

func TestDashboardBalanceIdentity(t *testing.T) {
	incomes := []domain.Income{
		income(domain.KindFixed, "3210.55"),
		income(domain.KindVariable, "89.45"),
	}
	expenses := []domain.Expense{
		expense(domain.CategoryFood, domain.KindVariable, domain.StatusPaid, "123.99"),
		expense(domain.CategoryHousing, domain.KindFixed, domain.StatusPaid, "990.01"),
	}

	s := engine.Dashboard(1, 2026, incomes, expenses)

	if !s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpenses)) {
		t.Errorf("Balance = %s, want TotalIncome - TotalExpenses = %s",
			s.Balance, s.TotalIncome.Sub(s.TotalExpenses))
	}
}

func TestDashboardOrderIndependence(t *testing.T) {
	incomes := []domain.Income{
		income(domain.KindFixed, "1000"),
		income(domain.KindVariable, "250.50"),
		income(domain.KindVariable, "99.99"),
	}
	expenses := []domain.Expense{
		expense(domain.CategoryFood, domain.KindVariable, domain.StatusPaid, "300"),
		expense(domain.CategoryHousing, domain.KindFixed, domain.StatusPending, "450.75"),
		expense(domain.CategoryOther, domain.KindVariable, domain.StatusPaid, "12.25"),
	}

	forward := engine.Dashboard(6, 2026, incomes, expenses)

	revIncomes := make([]domain.Income, len(incomes))
	revExpenses := make([]domain.Expense, len(expenses))
	for i := range incomes {
		revIncomes[len(incomes)-1-i] = incomes[i]
	}
	for i := range expenses {
		revExpenses[len(expenses)-1-i] = expenses[i]
	}
	backward := engine.Dashboard(6, 2026, revIncomes, revExpenses)

	if !forward.TotalIncome.Equal(backward.TotalIncome) ||
		!forward.TotalExpenses.Equal(backward.TotalExpenses) ||
		!forward.Balance.Equal(backward.Balance) ||
		!forward.PendingExpenses.Equal(backward.PendingExpenses) {
		t.Errorf("summary depends on record order: %+v vs %+v", forward, backward)
	}
	for cat, v := range forward.ExpensesByCategory {
		if !backward.ExpensesByCategory[cat].Equal(v) {
			t.Errorf("category %s depends on record order", cat)
		}
	}
}

func TestDashboardZeroIncome(t *testing.T) {
	expenses := []domain.Expense{
		expense(domain.CategoryFood, domain.KindVariable, domain.StatusPaid, "500"),
		expense(domain.CategoryInvestments, domain.KindFixed, domain.StatusPaid, "100"),
	}

	s := engine.Dashboard(2, 2026, nil, expenses)

	if !s.PercentExpenses.IsZero() {
		t.Errorf("PercentExpenses = %s, want 0 with no income", s.PercentExpenses)
	}
	if !s.PercentInvested.IsZero() {
		t.Errorf("PercentInvested = %s, want 0 with no income", s.PercentInvested)
	}
	if !s.Balance.Equal(d("-600")) {
		t.Errorf("Balance = %s, want -600", s.Balance)
	}
}

func TestDashboardEmpty(t *testing.T) {
	s := engine.Dashboard(7, 2026, nil, nil)

	if !s.TotalIncome.IsZero() || !s.TotalExpenses.IsZero() || !s.Balance.IsZero() {
		t.Errorf("empty period should produce zeroed summary, got %+v", s)
	}
	if len(s.ExpensesByCategory) != 0 {
		t.Errorf("ExpensesByCategory should be empty, got %v", s.ExpensesByCategory)
	}
}

func TestDashboardCategoryMap(t *testing.T) {
	expenses := []domain.Expense{
		expense(domain.CategoryFood, domain.KindVariable, domain.StatusPaid, "100"),
		expense(domain.CategoryFood, domain.KindVariable, domain.StatusPaid, "50.50"),
		expense(domain.CategoryHealth, domain.KindFixed, domain.StatusPaid, "200"),
	}

	s := engine.Dashboard(4, 2026, nil, expenses)

	if !s.ExpensesByCategory[domain.CategoryFood].Equal(d("150.50")) {
		t.Errorf("Food = %s, want 150.50", s.ExpensesByCategory[domain.CategoryFood])
	}
	if !s.ExpensesByCategory[domain.CategoryHealth].Equal(d("200")) {
		t.Errorf("Health = %s, want 200", s.ExpensesByCategory[domain.CategoryHealth])
	}
	if _, ok := s.ExpensesByCategory[domain.CategoryLeisure]; ok {
		t.Error("unused category should be omitted, not zero-filled")
	}
}
