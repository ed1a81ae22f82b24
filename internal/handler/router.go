package handler

import (
	"net/http"

	"github.com/joaquimoiio/financas-go/internal/infra/observability"
	"github.com/joaquimoiio/financas-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps bundles everything the router needs.
type Deps struct {
	Finance *service.FinanceService
	Auth    *service.AuthService
	Metrics *observability.Metrics
	Logger  *zap.Logger
	Store   Pinger
}

// NewRouter builds the HTTP routing tree.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.ZapLoggerMiddleware(deps.Logger))
	r.Use(RequestMetricsMiddleware(deps.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// Operational endpoints, no auth.
	r.Get("/healthz", healthzHandler(deps.Store))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", registerHandler(deps.Auth, deps.Logger))
			r.Post("/login", loginHandler(deps.Auth, deps.Logger))
			r.Post("/refresh", refreshHandler(deps.Auth, deps.Logger))

			r.Group(func(r chi.Router) {
				r.Use(JWTAuthMiddleware(deps.Auth))
				r.Post("/logout", logoutHandler(deps.Auth, deps.Logger))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(JWTAuthMiddleware(deps.Auth))

			r.Route("/incomes", func(r chi.Router) {
				r.Get("/", listIncomesHandler(deps.Finance, deps.Logger))
				r.Post("/", createIncomeHandler(deps.Finance, deps.Logger))
				r.Put("/{id}", updateIncomeHandler(deps.Finance, deps.Logger))
				r.Delete("/{id}", deleteIncomeHandler(deps.Finance, deps.Logger))
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", listExpensesHandler(deps.Finance, deps.Logger))
				r.Post("/", createExpenseHandler(deps.Finance, deps.Logger))
				r.Put("/{id}", updateExpenseHandler(deps.Finance, deps.Logger))
				r.Delete("/{id}", deleteExpenseHandler(deps.Finance, deps.Logger))
			})

			r.Route("/investments", func(r chi.Router) {
				r.Get("/", listInvestmentsHandler(deps.Finance, deps.Logger))
				r.Post("/", createInvestmentHandler(deps.Finance, deps.Logger))
				r.Get("/summary", investmentSummaryHandler(deps.Finance, deps.Logger))
				r.Put("/{id}", updateInvestmentHandler(deps.Finance, deps.Logger))
				r.Delete("/{id}", deleteInvestmentHandler(deps.Finance, deps.Logger))
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", listGoalsHandler(deps.Finance, deps.Logger))
				r.Post("/", createGoalHandler(deps.Finance, deps.Logger))
				r.Get("/{id}", getGoalHandler(deps.Finance, deps.Logger))
				r.Put("/{id}", updateGoalHandler(deps.Finance, deps.Logger))
				r.Delete("/{id}", deleteGoalHandler(deps.Finance, deps.Logger))
			})

			r.Get("/dashboard", dashboardHandler(deps.Finance, deps.Logger))
			r.Route("/planning", func(r chi.Router) {
				r.Get("/budget", budgetHandler(deps.Finance, deps.Logger))
				r.Get("/simulation", simulationHandler(deps.Finance, deps.Logger))
			})

			r.Get("/metrics/app", appMetricsHandler(deps.Metrics))
		})
	})

	return r
}

func appMetricsHandler(m *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.GetAppSnapshot())
	}
}
