package handler

import (
	"net/http"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func listExpensesHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.ListExpenses")
		defer span.End()

		month, year, err := parsePeriod(r)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		expenses, err := svc.ListExpenses(ctx, UserIDFromContext(ctx), month, year)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, expenses)
	}
}

func createExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.CreateExpense")
		defer span.End()

		var e domain.Expense
		if err := decodeBody(r, &e); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		e.UserID = UserIDFromContext(ctx)

		created, err := svc.CreateExpense(ctx, &e)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.UpdateExpense")
		defer span.End()

		var e domain.Expense
		if err := decodeBody(r, &e); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		e.ID = chi.URLParam(r, "id")
		e.UserID = UserIDFromContext(ctx)

		updated, err := svc.UpdateExpense(ctx, &e)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteExpenseHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.DeleteExpense")
		defer span.End()

		id := chi.URLParam(r, "id")
		if err := svc.DeleteExpense(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "expense deleted", ID: id})
	}
}
