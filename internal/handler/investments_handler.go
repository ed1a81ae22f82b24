package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// investmentRequest keeps the yield fields raw so a malformed value can
// be reported precisely instead of as a generic decode failure. A null
// or absent yield means zero.
type investmentRequest struct {
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	ContributionDate time.Time       `json:"contribution_date"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	EstimatedYield   json.RawMessage `json:"estimated_yield"`
	RealYield        json.RawMessage `json:"real_yield"`
	Status           string          `json:"status"`
}

func parseYield(field string, raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, nil
	}
	s := string(bytes.Trim(raw, `"`))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &domain.ErrInvalidYield{Field: field}
	}
	return d, nil
}

func (req *investmentRequest) toDomain() (*domain.Investment, error) {
	estimated, err := parseYield("estimated_yield", req.EstimatedYield)
	if err != nil {
		return nil, err
	}
	realYield, err := parseYield("real_yield", req.RealYield)
	if err != nil {
		return nil, err
	}
	return &domain.Investment{
		Type:             req.Type,
		Description:      req.Description,
		ContributionDate: req.ContributionDate,
		InvestedAmount:   req.InvestedAmount,
		EstimatedYield:   estimated,
		RealYield:        realYield,
		Status:           req.Status,
	}, nil
}

func listInvestmentsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.ListInvestments")
		defer span.End()

		views, err := svc.ListInvestments(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func createInvestmentHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.CreateInvestment")
		defer span.End()

		var req investmentRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		inv, err := req.toDomain()
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		inv.UserID = UserIDFromContext(ctx)

		created, err := svc.CreateInvestment(ctx, inv)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateInvestmentHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.UpdateInvestment")
		defer span.End()

		var req investmentRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		inv, err := req.toDomain()
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		inv.ID = chi.URLParam(r, "id")
		inv.UserID = UserIDFromContext(ctx)

		updated, err := svc.UpdateInvestment(ctx, inv)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteInvestmentHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.DeleteInvestment")
		defer span.End()

		id := chi.URLParam(r, "id")
		if err := svc.DeleteInvestment(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "investment deleted", ID: id})
	}
}

func investmentSummaryHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.InvestmentSummary")
		defer span.End()

		summary, err := svc.InvestmentSummary(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
