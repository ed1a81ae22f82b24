// Package domain defines the core entities of the personal finance
// tracker. These models are independent of transport and storage and
// are the canonical shapes used throughout the API.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================
// Enums
// ============================================================

// Kind of an income or expense entry.
const (
	KindFixed    = "Fixed"
	KindVariable = "Variable"
)

// Expense categories.
const (
	CategoryHousing     = "Housing"
	CategoryFood        = "Food"
	CategoryTransport   = "Transport"
	CategoryHealth      = "Health"
	CategoryEducation   = "Education"
	CategoryLeisure     = "Leisure"
	CategoryClothing    = "Clothing"
	CategoryInvestments = "Investments"
	CategoryOther       = "Other"
)

// Payment methods.
const (
	PaymentCash       = "Cash"
	PaymentPix        = "Pix"
	PaymentCreditCard = "CreditCard"
	PaymentDebitCard  = "DebitCard"
	PaymentTransfer   = "Transfer"
	PaymentBankSlip   = "BankSlip"
)

// Expense status.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
)

// Investment types.
const (
	InvestmentCDB      = "CDB"
	InvestmentStocks   = "Stocks"
	InvestmentFIIs     = "FIIs"
	InvestmentCrypto   = "Crypto"
	InvestmentTreasury = "TreasuryBonds"
	InvestmentSavings  = "SavingsAccount"
	InvestmentOther    = "Other"
)

// Investment lifecycle status. Redeemed investments are excluded from
// portfolio aggregates but remain in listings.
const (
	InvestmentActive   = "Active"
	InvestmentRedeemed = "Redeemed"
)

// ============================================================
// Records
// ============================================================

// Income is a single income entry for one month/year (derived from Date).
type Income struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Date      time.Time       `json:"date"`
	Source    string          `json:"source"`
	Kind      string          `json:"kind"` // Fixed, Variable
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Expense is a single expense entry for one month/year.
type Expense struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Kind          string          `json:"kind"` // Fixed, Variable
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"` // Paid, Pending
	CreatedAt     time.Time       `json:"created_at"`
}

// Investment is a contribution to an investment product. Not
// period-scoped: the portfolio is evaluated globally per user.
type Investment struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	ContributionDate time.Time       `json:"contribution_date"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	EstimatedYield   decimal.Decimal `json:"estimated_yield"` // percent, any sign
	RealYield        decimal.Decimal `json:"real_yield"`      // percent, user-updated, starts at 0
	Status           string          `json:"status"`          // Active, Redeemed
	CreatedAt        time.Time       `json:"created_at"`
}

// Goal is a savings goal. "Achieved" is derived, never persisted.
type Goal struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	Description         string          `json:"description"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ============================================================
// Derived views
// ============================================================

// InvestmentView is an Investment enriched with its derived figures,
// computed uniformly regardless of status.
type InvestmentView struct {
	Investment
	CurrentValue decimal.Decimal `json:"current_value"`
	Profit       decimal.Decimal `json:"profit"`
}

// GoalProgress is a Goal plus its derived progress figures.
// MonthsRemaining is nil when no monthly contribution is set and the
// goal has not been reached.
type GoalProgress struct {
	Goal
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	Remaining       decimal.Decimal `json:"remaining"`
	MonthsRemaining *int64          `json:"months_remaining,omitempty"`
	Unbounded       bool            `json:"unbounded"`
	Achieved        bool            `json:"achieved"`
}

// ============================================================
// Summaries
// ============================================================

// DashboardSummary aggregates one user's incomes and expenses for a
// single (month, year) period.
type DashboardSummary struct {
	Month              int                        `json:"month"`
	Year               int                        `json:"year"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	Balance            decimal.Decimal            `json:"balance"`
	FixedExpenses      decimal.Decimal            `json:"fixed_expenses"`
	VariableExpenses   decimal.Decimal            `json:"variable_expenses"`
	PendingExpenses    decimal.Decimal            `json:"pending_expenses"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	PercentExpenses    decimal.Decimal            `json:"percent_expenses"`
	PercentInvested    decimal.Decimal            `json:"percent_invested"`
}

// BudgetBucket is one slice of the 50/30/20 allocation.
type BudgetBucket struct {
	Name            string          `json:"name"`
	TargetFraction  decimal.Decimal `json:"target_fraction"`
	Target          decimal.Decimal `json:"target"`
	Actual          decimal.Decimal `json:"actual"`
	AchievedPercent decimal.Decimal `json:"achieved_percent"`
	Exceeded        bool            `json:"exceeded"`
	Gap             decimal.Decimal `json:"gap"` // positive = surplus, negative = over target
	Suggestion      string          `json:"suggestion"`
}

// BudgetAllocation is the 50/30/20 breakdown of one period's income.
type BudgetAllocation struct {
	TotalIncome decimal.Decimal `json:"total_income"`
	Needs       BudgetBucket    `json:"needs"`
	Wants       BudgetBucket    `json:"wants"`
	Investments BudgetBucket    `json:"investments"`
}

// InvestmentSimulation is the investable-remainder walk-through.
type InvestmentSimulation struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	EmergencyReserve  decimal.Decimal `json:"emergency_reserve"`
	AvailableToInvest decimal.Decimal `json:"available_to_invest"`
	AlreadyInvested   decimal.Decimal `json:"already_invested"`
	StillInvestable   decimal.Decimal `json:"still_investable"`
	OverInvested      bool            `json:"over_invested"`
}

// PortfolioSummary aggregates a user's Active investments.
type PortfolioSummary struct {
	TotalInvested    decimal.Decimal            `json:"total_invested"`
	CurrentValue     decimal.Decimal            `json:"current_value"`
	ProfitOrLoss     decimal.Decimal            `json:"profit_or_loss"`
	AllocationByType map[string]decimal.Decimal `json:"allocation_by_type"`
	ActiveCount      int                        `json:"active_count"`
}

// ============================================================
// Auth / Users
// ============================================================

// User is an account holder.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthCredential holds the stored password hash and lockout state.
type AuthCredential struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	PasswordHash   string     `json:"password_hash"`
	FailedAttempts int        `json:"failed_attempts"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// AuthRefreshToken is a refresh token stored hashed at rest.
type AuthRefreshToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
}

// RegisterRequest is the body for POST /v1/auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by login, register and refresh.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	UserID       string `json:"userId"`
	FullName     string `json:"fullName"`
}

// RefreshRequest is the body for POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ============================================================
// Health & Metrics API responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth is the health of an individual dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
}

// AppMetrics is the snapshot returned by GET /v1/metrics/app.
type AppMetrics struct {
	TotalRequests     int64   `json:"totalRequests"`
	ErrorRate         float64 `json:"errorRate"`
	CacheHitRate      float64 `json:"cacheHitRate"`
	SummariesComputed int64   `json:"summariesComputed"`
	Period            string  `json:"period"`
}

// SuccessResponse wraps a successful write with no richer payload.
type SuccessResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
