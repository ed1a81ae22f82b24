package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
)

// goalRow mirrors the goals table.
type goalRow struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	Description         string          `json:"description"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	CreatedAt           string          `json:"created_at"`
}

func (r goalRow) toDomain() domain.Goal {
	return domain.Goal{
		ID:                  r.ID,
		UserID:              r.UserID,
		Description:         r.Description,
		TargetAmount:        r.TargetAmount,
		CurrentAmount:       r.CurrentAmount,
		MonthlyContribution: r.MonthlyContribution,
		CreatedAt:           parseDate(r.CreatedAt),
	}
}

type goalPayload struct {
	ID                  string          `json:"id,omitempty"`
	UserID              string          `json:"user_id"`
	Description         string          `json:"description"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
}

func newGoalPayload(g *domain.Goal) goalPayload {
	return goalPayload{
		ID:                  g.ID,
		UserID:              g.UserID,
		Description:         g.Description,
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		MonthlyContribution: g.MonthlyContribution,
	}
}

// ListGoals returns every goal of one user, oldest first.
func (c *Client) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "supabase.ListGoals")
	defer span.End()

	path := fmt.Sprintf("goals?user_id=eq.%s&order=created_at.asc", userID)

	var rows []goalRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	goals := make([]domain.Goal, 0, len(rows))
	for _, r := range rows {
		goals = append(goals, r.toDomain())
	}
	return goals, nil
}

// GetGoal returns one goal owned by the given user.
func (c *Client) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetGoal")
	defer span.End()

	path := fmt.Sprintf("goals?id=eq.%s&user_id=eq.%s", goalID, userID)

	var rows []goalRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: goalID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// CreateGoal inserts a goal and returns the stored row.
func (c *Client) CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "supabase.CreateGoal")
	defer span.End()

	body, err := c.doPost(ctx, "goals", newGoalPayload(g))
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	row, err := decodeSingle[goalRow](body)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateGoal replaces a goal owned by the given user.
func (c *Client) UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, span := tracer.Start(ctx, "supabase.UpdateGoal")
	defer span.End()

	path := fmt.Sprintf("goals?id=eq.%s&user_id=eq.%s", g.ID, g.UserID)
	payload := newGoalPayload(g)
	payload.ID = ""

	body, err := c.doPatch(ctx, path, payload)
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	var rows []goalRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "goal", ID: g.ID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// DeleteGoal removes a goal owned by the given user.
func (c *Client) DeleteGoal(ctx context.Context, userID, goalID string) error {
	ctx, span := tracer.Start(ctx, "supabase.DeleteGoal")
	defer span.End()

	path := fmt.Sprintf("goals?id=eq.%s&user_id=eq.%s", goalID, userID)
	return c.deleteOne(ctx, path, "goal", goalID)
}
