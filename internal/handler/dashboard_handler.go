package handler

import (
	"net/http"

	"github.com/joaquimoiio/financas-go/internal/service"

	"go.uber.org/zap"
)

func dashboardHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.Dashboard")
		defer span.End()

		month, year, err := parsePeriod(r)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		summary, err := svc.Dashboard(ctx, UserIDFromContext(ctx), month, year)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func budgetHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.Budget")
		defer span.End()

		month, year, err := parsePeriod(r)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		allocation, err := svc.Budget(ctx, UserIDFromContext(ctx), month, year)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, allocation)
	}
}

func simulationHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.Simulation")
		defer span.End()

		month, year, err := parsePeriod(r)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}

		sim, err := svc.Simulation(ctx, UserIDFromContext(ctx), month, year)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, sim)
	}
}
