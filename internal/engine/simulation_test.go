package engine_test

import (
	"testing"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/engine"
)

func TestSimulate(t *testing.T) {
	s := domain.DashboardSummary{
		TotalIncome:      d("6550"),
		FixedExpenses:    d("2000"),
		VariableExpenses: d("1500"),
		PercentInvested:  d("15"),
	}

	sim := engine.Simulate(s)

	if !sim.EmergencyReserve.Equal(d("655")) {
		t.Errorf("EmergencyReserve = %s, want 655", sim.EmergencyReserve)
	}
	if !sim.AvailableToInvest.Equal(d("2395")) {
		t.Errorf("AvailableToInvest = %s, want 2395", sim.AvailableToInvest)
	}
	if !sim.AlreadyInvested.Equal(d("982.50")) {
		t.Errorf("AlreadyInvested = %s, want 982.50", sim.AlreadyInvested)
	}
	if !sim.StillInvestable.Equal(d("1412.50")) {
		t.Errorf("StillInvestable = %s, want 1412.50", sim.StillInvestable)
	}
	if sim.OverInvested {
		t.Error("OverInvested = true, want false")
	}
}

func TestSimulateOverInvested(t *testing.T) {
	s := domain.DashboardSummary{
		TotalIncome:      d("3000"),
		FixedExpenses:    d("1800"),
		VariableExpenses: d("900"),
		PercentInvested:  d("20"),
	}

	sim := engine.Simulate(s)

	// available: 3000 - 1800 - 900 - 300 = 0; already invested 600.
	if !sim.StillInvestable.Equal(d("-600")) {
		t.Errorf("StillInvestable = %s, want -600", sim.StillInvestable)
	}
	if !sim.OverInvested {
		t.Error("OverInvested = false, want true")
	}
}

func TestSimulateZeroIncome(t *testing.T) {
	sim := engine.Simulate(domain.DashboardSummary{
		VariableExpenses: d("250"),
	})

	if !sim.EmergencyReserve.IsZero() {
		t.Errorf("EmergencyReserve = %s, want 0", sim.EmergencyReserve)
	}
	if !sim.AvailableToInvest.Equal(d("-250")) {
		t.Errorf("AvailableToInvest = %s, want -250", sim.AvailableToInvest)
	}
	if !sim.OverInvested {
		t.Error("negative remainder should flag OverInvested")
	}
}
