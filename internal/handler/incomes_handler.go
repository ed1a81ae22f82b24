package handler

import (
	"net/http"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func listIncomesHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.ListIncomes")
		defer span.End()

		month, year, err := parsePeriod(r)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		incomes, err := svc.ListIncomes(ctx, UserIDFromContext(ctx), month, year)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, incomes)
	}
}

func createIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.CreateIncome")
		defer span.End()

		var in domain.Income
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		in.UserID = UserIDFromContext(ctx)

		created, err := svc.CreateIncome(ctx, &in)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.UpdateIncome")
		defer span.End()

		var in domain.Income
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		in.ID = chi.URLParam(r, "id")
		in.UserID = UserIDFromContext(ctx)

		updated, err := svc.UpdateIncome(ctx, &in)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteIncomeHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.DeleteIncome")
		defer span.End()

		id := chi.URLParam(r, "id")
		if err := svc.DeleteIncome(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "income deleted", ID: id})
	}
}
