package domain

import "strings"

// Validation rejects malformed records before they reach aggregation.
// Each function normalizes text fields in place (trimming) and returns
// the first rule violation found; a record is rejected in full.

var validKinds = map[string]bool{
	KindFixed:    true,
	KindVariable: true,
}

var validCategories = map[string]bool{
	CategoryHousing:     true,
	CategoryFood:        true,
	CategoryTransport:   true,
	CategoryHealth:      true,
	CategoryEducation:   true,
	CategoryLeisure:     true,
	CategoryClothing:    true,
	CategoryInvestments: true,
	CategoryOther:       true,
}

var validPaymentMethods = map[string]bool{
	PaymentCash:       true,
	PaymentPix:        true,
	PaymentCreditCard: true,
	PaymentDebitCard:  true,
	PaymentTransfer:   true,
	PaymentBankSlip:   true,
}

var validExpenseStatuses = map[string]bool{
	StatusPaid:    true,
	StatusPending: true,
}

var validInvestmentTypes = map[string]bool{
	InvestmentCDB:      true,
	InvestmentStocks:   true,
	InvestmentFIIs:     true,
	InvestmentCrypto:   true,
	InvestmentTreasury: true,
	InvestmentSavings:  true,
	InvestmentOther:    true,
}

var validInvestmentStatuses = map[string]bool{
	InvestmentActive:   true,
	InvestmentRedeemed: true,
}

// ValidateIncome checks an income record.
func ValidateIncome(in *Income) error {
	in.Source = strings.TrimSpace(in.Source)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Source == "" {
		return &ErrMissingField{Field: "source"}
	}
	if !validKinds[in.Kind] {
		return &ErrInvalidEnumValue{Field: "kind", Value: in.Kind}
	}
	if !in.Amount.IsPositive() {
		return &ErrInvalidAmount{Field: "amount", Message: "must be greater than zero"}
	}
	return nil
}

// ValidateExpense checks an expense record.
func ValidateExpense(e *Expense) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Description == "" {
		return &ErrMissingField{Field: "description"}
	}
	if !validCategories[e.Category] {
		return &ErrInvalidEnumValue{Field: "category", Value: e.Category}
	}
	if !validKinds[e.Kind] {
		return &ErrInvalidEnumValue{Field: "kind", Value: e.Kind}
	}
	if !validPaymentMethods[e.PaymentMethod] {
		return &ErrInvalidEnumValue{Field: "payment_method", Value: e.PaymentMethod}
	}
	if !validExpenseStatuses[e.Status] {
		return &ErrInvalidEnumValue{Field: "status", Value: e.Status}
	}
	if !e.Amount.IsPositive() {
		return &ErrInvalidAmount{Field: "amount", Message: "must be greater than zero"}
	}
	return nil
}

// ValidateInvestment checks an investment record. RealYield defaults
// to zero at creation and carries no sign restriction; yields may be
// negative.
func ValidateInvestment(inv *Investment) error {
	inv.Description = strings.TrimSpace(inv.Description)

	if inv.Description == "" {
		return &ErrMissingField{Field: "description"}
	}
	if !validInvestmentTypes[inv.Type] {
		return &ErrInvalidEnumValue{Field: "type", Value: inv.Type}
	}
	if !validInvestmentStatuses[inv.Status] {
		return &ErrInvalidEnumValue{Field: "status", Value: inv.Status}
	}
	if !inv.InvestedAmount.IsPositive() {
		return &ErrInvalidAmount{Field: "invested_amount", Message: "must be greater than zero"}
	}
	return nil
}

// ValidateGoal checks a savings goal.
func ValidateGoal(g *Goal) error {
	g.Description = strings.TrimSpace(g.Description)

	if g.Description == "" {
		return &ErrMissingField{Field: "description"}
	}
	if !g.TargetAmount.IsPositive() {
		return &ErrInvalidAmount{Field: "target_amount", Message: "must be greater than zero"}
	}
	if g.CurrentAmount.IsNegative() {
		return &ErrInvalidAmount{Field: "current_amount", Message: "must not be negative"}
	}
	if g.MonthlyContribution.IsNegative() {
		return &ErrInvalidAmount{Field: "monthly_contribution", Message: "must not be negative"}
	}
	return nil
}
