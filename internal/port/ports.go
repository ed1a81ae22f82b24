// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain and
// service layers from concrete implementations.
package port

import (
	"context"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"
)

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// FinanceStore defines all data operations for finance records.
// Implemented by the Supabase adapter (or any other persistence layer).
// Incomes and expenses are scoped to a (month, year) period; investments
// and goals are global per user.
type FinanceStore interface {
	// Incomes
	ListIncomes(ctx context.Context, userID string, month, year int) ([]domain.Income, error)
	CreateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error)
	UpdateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error)
	DeleteIncome(ctx context.Context, userID, incomeID string) error

	// Expenses
	ListExpenses(ctx context.Context, userID string, month, year int) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	// Investments
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
	CreateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, userID, investmentID string) error

	// Goals
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

// AuthStore defines all data operations for the authentication system.
type AuthStore interface {
	// Users
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error)

	// Credentials
	GetCredentials(ctx context.Context, userID string) (*domain.AuthCredential, error)
	UpdateCredentials(ctx context.Context, userID string, updates map[string]any) error

	// Refresh tokens
	StoreRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*domain.AuthRefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
}
