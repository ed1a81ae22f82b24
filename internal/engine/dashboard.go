package engine

import (
	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
)

// Dashboard aggregates one period's income and expense records into a
// DashboardSummary. Empty inputs are valid and produce zeroed output;
// record order never affects the result.
func Dashboard(month, year int, incomes []domain.Income, expenses []domain.Expense) domain.DashboardSummary {
	s := domain.DashboardSummary{
		Month:              month,
		Year:               year,
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, in := range incomes {
		s.TotalIncome = s.TotalIncome.Add(in.Amount)
	}

	var invested decimal.Decimal
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)

		switch e.Kind {
		case domain.KindFixed:
			s.FixedExpenses = s.FixedExpenses.Add(e.Amount)
		case domain.KindVariable:
			s.VariableExpenses = s.VariableExpenses.Add(e.Amount)
		}

		if e.Status == domain.StatusPending {
			s.PendingExpenses = s.PendingExpenses.Add(e.Amount)
		}

		// Categories with no expenses are omitted, not zero-filled.
		s.ExpensesByCategory[e.Category] = s.ExpensesByCategory[e.Category].Add(e.Amount)

		// "Invested this month" is read from the expense category,
		// deliberately decoupled from the investment portfolio.
		if e.Category == domain.CategoryInvestments {
			invested = invested.Add(e.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	s.PercentExpenses = percentOf(s.TotalExpenses, s.TotalIncome)
	s.PercentInvested = percentOf(invested, s.TotalIncome)

	return s
}
