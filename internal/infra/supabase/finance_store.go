package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// incomeRow mirrors the incomes table. Date columns arrive as plain
// "YYYY-MM-DD" strings from PostgREST, timestamps as RFC3339.
type incomeRow struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Date      string          `json:"date"`
	Source    string          `json:"source"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
	CreatedAt string          `json:"created_at"`
}

func (r incomeRow) toDomain() domain.Income {
	return domain.Income{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      parseDate(r.Date),
		Source:    r.Source,
		Kind:      r.Kind,
		Amount:    r.Amount,
		Notes:     r.Notes,
		CreatedAt: parseDate(r.CreatedAt),
	}
}

type incomePayload struct {
	ID     string          `json:"id,omitempty"`
	UserID string          `json:"user_id"`
	Date   string          `json:"date"`
	Source string          `json:"source"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

func newIncomePayload(in *domain.Income) incomePayload {
	return incomePayload{
		ID:     in.ID,
		UserID: in.UserID,
		Date:   in.Date.Format("2006-01-02"),
		Source: in.Source,
		Kind:   in.Kind,
		Amount: in.Amount,
		Notes:  in.Notes,
	}
}

// expenseRow mirrors the expenses table.
type expenseRow struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Kind          string          `json:"kind"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

func (r expenseRow) toDomain() domain.Expense {
	return domain.Expense{
		ID:            r.ID,
		UserID:        r.UserID,
		Date:          parseDate(r.Date),
		Description:   r.Description,
		Category:      r.Category,
		Kind:          r.Kind,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
		Status:        r.Status,
		CreatedAt:     parseDate(r.CreatedAt),
	}
}

type expensePayload struct {
	ID            string          `json:"id,omitempty"`
	UserID        string          `json:"user_id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Kind          string          `json:"kind"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

func newExpensePayload(e *domain.Expense) expensePayload {
	return expensePayload{
		ID:            e.ID,
		UserID:        e.UserID,
		Date:          e.Date.Format("2006-01-02"),
		Description:   e.Description,
		Category:      e.Category,
		Kind:          e.Kind,
		PaymentMethod: e.PaymentMethod,
		Amount:        e.Amount,
		Status:        e.Status,
	}
}

// ============================================================
// Incomes
// ============================================================

// ListIncomes returns all income entries for one user in a given
// (month, year) period, oldest first.
func (c *Client) ListIncomes(ctx context.Context, userID string, month, year int) ([]domain.Income, error) {
	ctx, span := tracer.Start(ctx, "supabase.ListIncomes", trace.WithAttributes(
		attribute.Int("month", month),
		attribute.Int("year", year),
	))
	defer span.End()

	from, to := monthRange(month, year)
	path := fmt.Sprintf("incomes?user_id=eq.%s&date=gte.%s&date=lt.%s&order=date.asc", userID, from, to)

	var rows []incomeRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	incomes := make([]domain.Income, 0, len(rows))
	for _, r := range rows {
		incomes = append(incomes, r.toDomain())
	}
	return incomes, nil
}

// CreateIncome inserts an income entry and returns the stored row.
func (c *Client) CreateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error) {
	ctx, span := tracer.Start(ctx, "supabase.CreateIncome")
	defer span.End()

	body, err := c.doPost(ctx, "incomes", newIncomePayload(in))
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	row, err := decodeSingle[incomeRow](body)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateIncome replaces an income entry. The entry must belong to the
// given user or the update is a no-op and reported as not found.
func (c *Client) UpdateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error) {
	ctx, span := tracer.Start(ctx, "supabase.UpdateIncome")
	defer span.End()

	path := fmt.Sprintf("incomes?id=eq.%s&user_id=eq.%s", in.ID, in.UserID)
	payload := newIncomePayload(in)
	payload.ID = "" // never rewrite the primary key

	body, err := c.doPatch(ctx, path, payload)
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	var rows []incomeRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "income", ID: in.ID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// DeleteIncome removes an income entry owned by the given user.
func (c *Client) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	ctx, span := tracer.Start(ctx, "supabase.DeleteIncome")
	defer span.End()

	path := fmt.Sprintf("incomes?id=eq.%s&user_id=eq.%s", incomeID, userID)
	return c.deleteOne(ctx, path, "income", incomeID)
}

// ============================================================
// Expenses
// ============================================================

// ListExpenses returns all expense entries for one user in a given
// (month, year) period, oldest first.
func (c *Client) ListExpenses(ctx context.Context, userID string, month, year int) ([]domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "supabase.ListExpenses", trace.WithAttributes(
		attribute.Int("month", month),
		attribute.Int("year", year),
	))
	defer span.End()

	from, to := monthRange(month, year)
	path := fmt.Sprintf("expenses?user_id=eq.%s&date=gte.%s&date=lt.%s&order=date.asc", userID, from, to)

	var rows []expenseRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	expenses := make([]domain.Expense, 0, len(rows))
	for _, r := range rows {
		expenses = append(expenses, r.toDomain())
	}
	return expenses, nil
}

// CreateExpense inserts an expense entry and returns the stored row.
func (c *Client) CreateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "supabase.CreateExpense")
	defer span.End()

	body, err := c.doPost(ctx, "expenses", newExpensePayload(e))
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	row, err := decodeSingle[expenseRow](body)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateExpense replaces an expense entry owned by the given user.
func (c *Client) UpdateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	ctx, span := tracer.Start(ctx, "supabase.UpdateExpense")
	defer span.End()

	path := fmt.Sprintf("expenses?id=eq.%s&user_id=eq.%s", e.ID, e.UserID)
	payload := newExpensePayload(e)
	payload.ID = ""

	body, err := c.doPatch(ctx, path, payload)
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	var rows []expenseRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "expense", ID: e.ID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// DeleteExpense removes an expense entry owned by the given user.
func (c *Client) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	ctx, span := tracer.Start(ctx, "supabase.DeleteExpense")
	defer span.End()

	path := fmt.Sprintf("expenses?id=eq.%s&user_id=eq.%s", expenseID, userID)
	return c.deleteOne(ctx, path, "expense", expenseID)
}

// deleteOne issues a DELETE and reports not found when no row matched.
func (c *Client) deleteOne(ctx context.Context, path, resource, id string) error {
	body, err := c.doMutation(ctx, "DELETE", path, nil)
	if err != nil {
		c.logger.Warn("supabase: delete failed",
			zap.String("resource", resource),
			zap.String("id", id),
			zap.Error(err),
		)
		return c.wrapErr("supabase", err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if len(rows) == 0 {
		return &domain.ErrNotFound{Resource: resource, ID: id}
	}
	return nil
}
