package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/shopspring/decimal"
)

// investmentRow mirrors the investments table.
type investmentRow struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	ContributionDate string          `json:"contribution_date"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	EstimatedYield   decimal.Decimal `json:"estimated_yield"`
	RealYield        decimal.Decimal `json:"real_yield"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
}

func (r investmentRow) toDomain() domain.Investment {
	return domain.Investment{
		ID:               r.ID,
		UserID:           r.UserID,
		Type:             r.Type,
		Description:      r.Description,
		ContributionDate: parseDate(r.ContributionDate),
		InvestedAmount:   r.InvestedAmount,
		EstimatedYield:   r.EstimatedYield,
		RealYield:        r.RealYield,
		Status:           r.Status,
		CreatedAt:        parseDate(r.CreatedAt),
	}
}

type investmentPayload struct {
	ID               string          `json:"id,omitempty"`
	UserID           string          `json:"user_id"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	ContributionDate string          `json:"contribution_date"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	EstimatedYield   decimal.Decimal `json:"estimated_yield"`
	RealYield        decimal.Decimal `json:"real_yield"`
	Status           string          `json:"status"`
}

func newInvestmentPayload(inv *domain.Investment) investmentPayload {
	return investmentPayload{
		ID:               inv.ID,
		UserID:           inv.UserID,
		Type:             inv.Type,
		Description:      inv.Description,
		ContributionDate: inv.ContributionDate.Format("2006-01-02"),
		InvestedAmount:   inv.InvestedAmount,
		EstimatedYield:   inv.EstimatedYield,
		RealYield:        inv.RealYield,
		Status:           inv.Status,
	}
}

// ListInvestments returns every investment of one user, newest
// contribution first. The portfolio is global, not period-scoped.
func (c *Client) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	ctx, span := tracer.Start(ctx, "supabase.ListInvestments")
	defer span.End()

	path := fmt.Sprintf("investments?user_id=eq.%s&order=contribution_date.desc", userID)

	var rows []investmentRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	investments := make([]domain.Investment, 0, len(rows))
	for _, r := range rows {
		investments = append(investments, r.toDomain())
	}
	return investments, nil
}

// CreateInvestment inserts an investment and returns the stored row.
func (c *Client) CreateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	ctx, span := tracer.Start(ctx, "supabase.CreateInvestment")
	defer span.End()

	body, err := c.doPost(ctx, "investments", newInvestmentPayload(inv))
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	row, err := decodeSingle[investmentRow](body)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateInvestment replaces an investment owned by the given user.
func (c *Client) UpdateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	ctx, span := tracer.Start(ctx, "supabase.UpdateInvestment")
	defer span.End()

	path := fmt.Sprintf("investments?id=eq.%s&user_id=eq.%s", inv.ID, inv.UserID)
	payload := newInvestmentPayload(inv)
	payload.ID = ""

	body, err := c.doPatch(ctx, path, payload)
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	var rows []investmentRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "investment", ID: inv.ID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// DeleteInvestment removes an investment owned by the given user.
func (c *Client) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	ctx, span := tracer.Start(ctx, "supabase.DeleteInvestment")
	defer span.End()

	path := fmt.Sprintf("investments?id=eq.%s&user_id=eq.%s", investmentID, userID)
	return c.deleteOne(ctx, path, "investment", investmentID)
}
