package handler

import (
	"net/http"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func listGoalsHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.ListGoals")
		defer span.End()

		goals, err := svc.ListGoals(ctx, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, goals)
	}
}

func getGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.GetGoal")
		defer span.End()

		goal, err := svc.GetGoal(ctx, UserIDFromContext(ctx), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

func createGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.CreateGoal")
		defer span.End()

		var g domain.Goal
		if err := decodeBody(r, &g); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		g.UserID = UserIDFromContext(ctx)

		created, err := svc.CreateGoal(ctx, &g)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.UpdateGoal")
		defer span.End()

		var g domain.Goal
		if err := decodeBody(r, &g); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		g.ID = chi.URLParam(r, "id")
		g.UserID = UserIDFromContext(ctx)

		updated, err := svc.UpdateGoal(ctx, &g)
		if err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteGoalHandler(svc *service.FinanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "handler.DeleteGoal")
		defer span.End()

		id := chi.URLParam(r, "id")
		if err := svc.DeleteGoal(ctx, UserIDFromContext(ctx), id); err != nil {
			handleServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "goal deleted", ID: id})
	}
}
