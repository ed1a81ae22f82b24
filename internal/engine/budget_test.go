package engine_test

import (
	"strings"
	"testing"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/engine"
)

func TestBudgetExceededNeeds(t *testing.T) {
	s := domain.DashboardSummary{
		TotalIncome:   d("4000"),
		FixedExpenses: d("2500"),
	}

	a := engine.Budget(s)

	needs := a.Needs
	if !needs.Target.Equal(d("2000")) {
		t.Errorf("Needs.Target = %s, want 2000", needs.Target)
	}
	if !needs.AchievedPercent.Equal(d("125")) {
		t.Errorf("Needs.AchievedPercent = %s, want 125", needs.AchievedPercent)
	}
	if !needs.Exceeded {
		t.Error("Needs.Exceeded = false, want true")
	}
	if !needs.Gap.Equal(d("-500")) {
		t.Errorf("Needs.Gap = %s, want -500", needs.Gap)
	}
	if !strings.Contains(needs.Suggestion, "500.00") {
		t.Errorf("Needs.Suggestion = %q, want the overshoot amount", needs.Suggestion)
	}
}

func TestBudgetTargets(t *testing.T) {
	s := domain.DashboardSummary{
		TotalIncome:      d("6000"),
		FixedExpenses:    d("2800"),
		VariableExpenses: d("1500"),
		PercentInvested:  d("10"),
	}

	a := engine.Budget(s)

	if !a.Needs.Target.Equal(d("3000")) {
		t.Errorf("Needs.Target = %s, want 3000", a.Needs.Target)
	}
	if !a.Wants.Target.Equal(d("1800")) {
		t.Errorf("Wants.Target = %s, want 1800", a.Wants.Target)
	}
	if !a.Investments.Target.Equal(d("1200")) {
		t.Errorf("Investments.Target = %s, want 1200", a.Investments.Target)
	}
	// 10% of 6000 invested against a 20% target.
	if !a.Investments.Actual.Equal(d("600")) {
		t.Errorf("Investments.Actual = %s, want 600", a.Investments.Actual)
	}
	if !a.Investments.AchievedPercent.Equal(d("50")) {
		t.Errorf("Investments.AchievedPercent = %s, want 50", a.Investments.AchievedPercent)
	}
	if a.Investments.Exceeded {
		t.Error("Investments.Exceeded = true, want false")
	}
	if !strings.Contains(a.Investments.Suggestion, "invest") {
		t.Errorf("Investments.Suggestion = %q, want an invest-more hint", a.Investments.Suggestion)
	}
}

func TestBudgetZeroIncome(t *testing.T) {
	a := engine.Budget(domain.DashboardSummary{})

	for _, b := range []domain.BudgetBucket{a.Needs, a.Wants, a.Investments} {
		if !b.Target.IsZero() {
			t.Errorf("%s.Target = %s, want 0", b.Name, b.Target)
		}
		if !b.AchievedPercent.IsZero() {
			t.Errorf("%s.AchievedPercent = %s, want 0", b.Name, b.AchievedPercent)
		}
		if b.Exceeded {
			t.Errorf("%s.Exceeded = true, want false with zero income", b.Name)
		}
	}
}

func TestBudgetExactlyOnTarget(t *testing.T) {
	s := domain.DashboardSummary{
		TotalIncome:   d("5000"),
		FixedExpenses: d("2500"),
	}

	needs := engine.Budget(s).Needs

	if !needs.AchievedPercent.Equal(d("100")) {
		t.Errorf("AchievedPercent = %s, want 100", needs.AchievedPercent)
	}
	if needs.Exceeded {
		t.Error("a bucket at exactly 100% is not exceeded")
	}
	if needs.Suggestion != "On target" {
		t.Errorf("Suggestion = %q, want 'On target'", needs.Suggestion)
	}
}
