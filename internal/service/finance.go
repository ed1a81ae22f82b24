// Package service contains the application services that orchestrate
// validation, persistence, caching and the computation engine.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/engine"
	"github.com/joaquimoiio/financas-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service")

// Metrics is the subset of observability counters the services record.
type Metrics interface {
	RecordRequestDuration(operation string, d time.Duration)
	IncrStoreError(store string)
	IncrCacheHit(cache string)
	IncrCacheMiss(cache string)
	IncrSummaryComputed(summaryType string)
}

// FinanceService manages finance records and their derived summaries.
type FinanceService struct {
	store   port.FinanceStore
	cache   port.Cache[domain.DashboardSummary]
	metrics Metrics
	logger  *zap.Logger
}

// NewFinanceService creates a FinanceService.
func NewFinanceService(store port.FinanceStore, cache port.Cache[domain.DashboardSummary], metrics Metrics, logger *zap.Logger) *FinanceService {
	return &FinanceService{
		store:   store,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// dashboardKey scopes cached summaries per user and period.
func dashboardKey(userID string, month, year int) string {
	return fmt.Sprintf("%s:%d-%02d", userID, year, month)
}

// invalidatePeriod drops the cached summary for the period an income
// or expense write touched.
func (s *FinanceService) invalidatePeriod(userID string, date time.Time) {
	s.cache.Delete(dashboardKey(userID, int(date.Month()), date.Year()))
}

// ============================================================
// Incomes
// ============================================================

// ListIncomes returns the user's income entries for one period.
func (s *FinanceService) ListIncomes(ctx context.Context, userID string, month, year int) ([]domain.Income, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListIncomes")
	defer span.End()

	incomes, err := s.store.ListIncomes(ctx, userID, month, year)
	if err != nil {
		s.metrics.IncrStoreError("incomes")
		return nil, err
	}
	return incomes, nil
}

// CreateIncome validates and persists a new income entry.
func (s *FinanceService) CreateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateIncome")
	defer span.End()

	if err := domain.ValidateIncome(in); err != nil {
		return nil, err
	}

	in.ID = uuid.NewString()
	created, err := s.store.CreateIncome(ctx, in)
	if err != nil {
		s.metrics.IncrStoreError("incomes")
		return nil, err
	}

	s.invalidatePeriod(in.UserID, in.Date)
	s.logger.Info("income created",
		zap.String("income_id", created.ID),
		zap.String("user_id", created.UserID),
	)
	return created, nil
}

// UpdateIncome validates and fully replaces an income entry.
func (s *FinanceService) UpdateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateIncome")
	defer span.End()

	if err := domain.ValidateIncome(in); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateIncome(ctx, in)
	if err != nil {
		s.metrics.IncrStoreError("incomes")
		return nil, err
	}

	s.invalidatePeriod(in.UserID, in.Date)
	return updated, nil
}

// DeleteIncome removes an income entry.
func (s *FinanceService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteIncome")
	defer span.End()

	if err := s.store.DeleteIncome(ctx, userID, incomeID); err != nil {
		s.metrics.IncrStoreError("incomes")
		return err
	}

	// The deleted row's period is unknown here; dropping the current
	// period covers the common case, the TTL covers the rest.
	s.invalidatePeriod(userID, time.Now())
	return nil
}

// ============================================================
// Expenses
// ============================================================

// ListExpenses returns the user's expense entries for one period.
func (s *FinanceService) ListExpenses(ctx context.Context, userID string, month, year int) ([]domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListExpenses")
	defer span.End()

	expenses, err := s.store.ListExpenses(ctx, userID, month, year)
	if err != nil {
		s.metrics.IncrStoreError("expenses")
		return nil, err
	}
	return expenses, nil
}

// CreateExpense validates and persists a new expense entry.
func (s *FinanceService) CreateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateExpense")
	defer span.End()

	if err := domain.ValidateExpense(e); err != nil {
		return nil, err
	}

	e.ID = uuid.NewString()
	created, err := s.store.CreateExpense(ctx, e)
	if err != nil {
		s.metrics.IncrStoreError("expenses")
		return nil, err
	}

	s.invalidatePeriod(e.UserID, e.Date)
	s.logger.Info("expense created",
		zap.String("expense_id", created.ID),
		zap.String("user_id", created.UserID),
		zap.String("category", created.Category),
	)
	return created, nil
}

// UpdateExpense validates and fully replaces an expense entry.
func (s *FinanceService) UpdateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateExpense")
	defer span.End()

	if err := domain.ValidateExpense(e); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateExpense(ctx, e)
	if err != nil {
		s.metrics.IncrStoreError("expenses")
		return nil, err
	}

	s.invalidatePeriod(e.UserID, e.Date)
	return updated, nil
}

// DeleteExpense removes an expense entry.
func (s *FinanceService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteExpense")
	defer span.End()

	if err := s.store.DeleteExpense(ctx, userID, expenseID); err != nil {
		s.metrics.IncrStoreError("expenses")
		return err
	}

	s.invalidatePeriod(userID, time.Now())
	return nil
}

// ============================================================
// Summaries
// ============================================================

// Dashboard computes (or serves from cache) the dashboard summary of
// one user for one (month, year) period. Incomes and expenses are
// fetched concurrently.
func (s *FinanceService) Dashboard(ctx context.Context, userID string, month, year int) (*domain.DashboardSummary, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Dashboard", trace.WithAttributes(
		attribute.Int("month", month),
		attribute.Int("year", year),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("dashboard", time.Since(start))
	}()

	key := dashboardKey(userID, month, year)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.IncrCacheHit("dashboard")
		return &cached, nil
	}
	s.metrics.IncrCacheMiss("dashboard")

	var (
		incomes  []domain.Income
		expenses []domain.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.store.ListIncomes(gctx, userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(gctx, userID, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncrStoreError("dashboard")
		return nil, err
	}

	summary := engine.Dashboard(month, year, incomes, expenses)
	s.metrics.IncrSummaryComputed("dashboard")
	s.cache.Set(key, summary)

	s.logger.Debug("dashboard computed",
		zap.String("user_id", userID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("incomes", len(incomes)),
		zap.Int("expenses", len(expenses)),
	)
	return &summary, nil
}

// Budget computes the 50/30/20 allocation for one period.
func (s *FinanceService) Budget(ctx context.Context, userID string, month, year int) (*domain.BudgetAllocation, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Budget")
	defer span.End()

	summary, err := s.Dashboard(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	allocation := engine.Budget(*summary)
	s.metrics.IncrSummaryComputed("budget")
	return &allocation, nil
}

// Simulation computes the investable-remainder walk-through for one period.
func (s *FinanceService) Simulation(ctx context.Context, userID string, month, year int) (*domain.InvestmentSimulation, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.Simulation")
	defer span.End()

	summary, err := s.Dashboard(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	sim := engine.Simulate(*summary)
	s.metrics.IncrSummaryComputed("simulation")
	return &sim, nil
}

// ============================================================
// Investments
// ============================================================

// ListInvestments returns the user's investments enriched with their
// derived current value and profit.
func (s *FinanceService) ListInvestments(ctx context.Context, userID string) ([]domain.InvestmentView, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListInvestments")
	defer span.End()

	investments, err := s.store.ListInvestments(ctx, userID)
	if err != nil {
		s.metrics.IncrStoreError("investments")
		return nil, err
	}

	views := make([]domain.InvestmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, engine.View(inv))
	}
	return views, nil
}

// CreateInvestment validates and persists a new investment.
func (s *FinanceService) CreateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateInvestment")
	defer span.End()

	if inv.Status == "" {
		inv.Status = domain.InvestmentActive
	}
	if err := domain.ValidateInvestment(inv); err != nil {
		return nil, err
	}

	inv.ID = uuid.NewString()
	created, err := s.store.CreateInvestment(ctx, inv)
	if err != nil {
		s.metrics.IncrStoreError("investments")
		return nil, err
	}

	s.logger.Info("investment created",
		zap.String("investment_id", created.ID),
		zap.String("user_id", created.UserID),
		zap.String("type", created.Type),
	)
	return created, nil
}

// UpdateInvestment validates and fully replaces an investment.
func (s *FinanceService) UpdateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateInvestment")
	defer span.End()

	if err := domain.ValidateInvestment(inv); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateInvestment(ctx, inv)
	if err != nil {
		s.metrics.IncrStoreError("investments")
		return nil, err
	}
	return updated, nil
}

// DeleteInvestment removes an investment.
func (s *FinanceService) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteInvestment")
	defer span.End()

	if err := s.store.DeleteInvestment(ctx, userID, investmentID); err != nil {
		s.metrics.IncrStoreError("investments")
		return err
	}
	return nil
}

// InvestmentSummary aggregates the user's Active investments.
func (s *FinanceService) InvestmentSummary(ctx context.Context, userID string) (*domain.PortfolioSummary, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.InvestmentSummary")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("portfolio", time.Since(start))
	}()

	investments, err := s.store.ListInvestments(ctx, userID)
	if err != nil {
		s.metrics.IncrStoreError("investments")
		return nil, err
	}

	summary := engine.Portfolio(investments)
	s.metrics.IncrSummaryComputed("portfolio")
	return &summary, nil
}

// ============================================================
// Goals
// ============================================================

// ListGoals returns the user's goals with derived progress figures.
func (s *FinanceService) ListGoals(ctx context.Context, userID string) ([]domain.GoalProgress, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.ListGoals")
	defer span.End()

	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		s.metrics.IncrStoreError("goals")
		return nil, err
	}

	progress := make([]domain.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, engine.Progress(g))
	}
	return progress, nil
}

// GetGoal returns one goal with derived progress figures.
func (s *FinanceService) GetGoal(ctx context.Context, userID, goalID string) (*domain.GoalProgress, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.GetGoal")
	defer span.End()

	goal, err := s.store.GetGoal(ctx, userID, goalID)
	if err != nil {
		s.metrics.IncrStoreError("goals")
		return nil, err
	}

	progress := engine.Progress(*goal)
	return &progress, nil
}

// CreateGoal validates and persists a new goal.
func (s *FinanceService) CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.CreateGoal")
	defer span.End()

	if err := domain.ValidateGoal(g); err != nil {
		return nil, err
	}

	g.ID = uuid.NewString()
	created, err := s.store.CreateGoal(ctx, g)
	if err != nil {
		s.metrics.IncrStoreError("goals")
		return nil, err
	}

	s.logger.Info("goal created",
		zap.String("goal_id", created.ID),
		zap.String("user_id", created.UserID),
	)
	return created, nil
}

// UpdateGoal validates and fully replaces a goal.
func (s *FinanceService) UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "FinanceService.UpdateGoal")
	defer span.End()

	if err := domain.ValidateGoal(g); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateGoal(ctx, g)
	if err != nil {
		s.metrics.IncrStoreError("goals")
		return nil, err
	}
	return updated, nil
}

// DeleteGoal removes a goal.
func (s *FinanceService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	ctx, span := tracer.Start(ctx, "FinanceService.DeleteGoal")
	defer span.End()

	if err := s.store.DeleteGoal(ctx, userID, goalID); err != nil {
		s.metrics.IncrStoreError("goals")
		return err
	}
	return nil
}
