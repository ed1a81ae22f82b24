package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/handler"
	"github.com/joaquimoiio/financas-go/internal/infra/cache"
	"github.com/joaquimoiio/financas-go/internal/infra/observability"
	"github.com/joaquimoiio/financas-go/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// stubFinanceStore serves fixed records for any user and period.
type stubFinanceStore struct {
	incomes  []domain.Income
	expenses []domain.Expense
}

func (s *stubFinanceStore) ListIncomes(ctx context.Context, userID string, month, year int) ([]domain.Income, error) {
	return s.incomes, nil
}

func (s *stubFinanceStore) CreateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error) {
	return in, nil
}

func (s *stubFinanceStore) UpdateIncome(ctx context.Context, in *domain.Income) (*domain.Income, error) {
	return in, nil
}

func (s *stubFinanceStore) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	return nil
}

func (s *stubFinanceStore) ListExpenses(ctx context.Context, userID string, month, year int) ([]domain.Expense, error) {
	return s.expenses, nil
}

func (s *stubFinanceStore) CreateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	return e, nil
}

func (s *stubFinanceStore) UpdateExpense(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	return e, nil
}

func (s *stubFinanceStore) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	return nil
}

func (s *stubFinanceStore) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	return nil, nil
}

func (s *stubFinanceStore) CreateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	return inv, nil
}

func (s *stubFinanceStore) UpdateInvestment(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	return inv, nil
}

func (s *stubFinanceStore) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	return nil
}

func (s *stubFinanceStore) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return nil, nil
}

func (s *stubFinanceStore) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	return nil, &domain.ErrNotFound{Resource: "goal", ID: goalID}
}

func (s *stubFinanceStore) CreateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	return g, nil
}

func (s *stubFinanceStore) UpdateGoal(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	return g, nil
}

func (s *stubFinanceStore) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return nil
}

// stubAuthStore is just enough of an AuthStore for register and login.
type stubAuthStore struct {
	users       map[string]*domain.User
	credentials map[string]*domain.AuthCredential
	tokens      map[string]*domain.AuthRefreshToken
}

func newStubAuthStore() *stubAuthStore {
	return &stubAuthStore{
		users:       make(map[string]*domain.User),
		credentials: make(map[string]*domain.AuthCredential),
		tokens:      make(map[string]*domain.AuthRefreshToken),
	}
}

func (s *stubAuthStore) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return nil, &domain.ErrNotFound{Resource: "user", ID: userID}
}

func (s *stubAuthStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "user", ID: email}
}

func (s *stubAuthStore) CreateUser(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error) {
	s.users[user.ID] = user
	s.credentials[user.ID] = &domain.AuthCredential{UserID: user.ID, PasswordHash: passwordHash}
	return user, nil
}

func (s *stubAuthStore) GetCredentials(ctx context.Context, userID string) (*domain.AuthCredential, error) {
	if c, ok := s.credentials[userID]; ok {
		return c, nil
	}
	return nil, &domain.ErrNotFound{Resource: "credentials", ID: userID}
}

func (s *stubAuthStore) UpdateCredentials(ctx context.Context, userID string, updates map[string]any) error {
	return nil
}

func (s *stubAuthStore) StoreRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	s.tokens[tokenHash] = &domain.AuthRefreshToken{UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	return nil
}

func (s *stubAuthStore) GetRefreshToken(ctx context.Context, tokenHash string) (*domain.AuthRefreshToken, error) {
	if t, ok := s.tokens[tokenHash]; ok {
		return t, nil
	}
	return nil, &domain.ErrNotFound{Resource: "refresh token", ID: ""}
}

func (s *stubAuthStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return nil
}

func (s *stubAuthStore) RevokeAllRefreshTokens(ctx context.Context, userID string) error {
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func newTestRouter(t *testing.T, store *stubFinanceStore, ping stubPinger) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	financeSvc := service.NewFinanceService(
		store,
		cache.New[domain.DashboardSummary](time.Minute),
		metrics,
		logger,
	)
	authSvc := service.NewAuthService(newStubAuthStore(), logger, "test-secret", 15*time.Minute, time.Hour)

	return handler.NewRouter(handler.Deps{
		Finance: financeSvc,
		Auth:    authSvc,
		Metrics: metrics,
		Logger:  logger,
		Store:   ping,
	})
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubFinanceStore{}, stubPinger{})

	for _, path := range []string{"/healthz", "/readyz", "/ping", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestHealthzDegraded(t *testing.T) {
	router := newTestRouter(t, &stubFinanceStore{}, stubPinger{err: context.DeadlineExceeded})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /healthz = %d, want 503", rec.Code)
	}

	var health domain.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if health.Status != "degraded" {
		t.Errorf("status = %q, want degraded", health.Status)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, &stubFinanceStore{}, stubPinger{})

	paths := []string{
		"/v1/dashboard",
		"/v1/incomes",
		"/v1/expenses",
		"/v1/investments/summary",
		"/v1/goals",
		"/v1/planning/budget",
		"/v1/planning/simulation",
		"/v1/metrics/app",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, rec.Code)
		}
	}
}

func TestAuthRoundTripAndDashboard(t *testing.T) {
	store := &stubFinanceStore{
		incomes: []domain.Income{
			{Source: "Salary", Kind: domain.KindFixed, Amount: decimal.RequireFromString("5000")},
		},
		expenses: []domain.Expense{
			{Description: "Rent", Category: domain.CategoryHousing, Kind: domain.KindFixed,
				PaymentMethod: domain.PaymentTransfer, Status: domain.StatusPaid,
				Amount: decimal.RequireFromString("1500")},
		},
	}
	router := newTestRouter(t, store, stubPinger{})

	body, _ := json.Marshal(domain.RegisterRequest{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /v1/auth/register = %d, body %s", rec.Code, rec.Body.String())
	}

	var session domain.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard?month=3&year=2026", nil)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/dashboard = %d, body %s", rec.Code, rec.Body.String())
	}

	var summary domain.DashboardSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if !summary.Balance.Equal(decimal.RequireFromString("3500")) {
		t.Errorf("Balance = %s, want 3500", summary.Balance)
	}
	if summary.Month != 3 || summary.Year != 2026 {
		t.Errorf("period = %d/%d, want 3/2026", summary.Month, summary.Year)
	}
}

func TestDashboardRejectsBadPeriod(t *testing.T) {
	router := newTestRouter(t, &stubFinanceStore{}, stubPinger{})

	body, _ := json.Marshal(domain.RegisterRequest{
		FullName: "Ana",
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var session domain.LoginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &session)

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard?month=13", nil)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("GET /v1/dashboard?month=13 = %d, want 400", rec.Code)
	}
}

func TestCreateExpenseValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t, &stubFinanceStore{}, stubPinger{})

	body, _ := json.Marshal(domain.RegisterRequest{
		FullName: "Ana",
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var session domain.LoginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &session)

	payload := []byte(`{
		"description": "Rent",
		"category": "Housing",
		"kind": "Fixed",
		"payment_method": "Transfer",
		"status": "Closed",
		"amount": 1200
	}`)
	req = httptest.NewRequest(http.MethodPost, "/v1/expenses", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST /v1/expenses with bad status = %d, want 400", rec.Code)
	}
}

func TestCreateInvestmentRejectsBadYield(t *testing.T) {
	router := newTestRouter(t, &stubFinanceStore{}, stubPinger{})

	body, _ := json.Marshal(domain.RegisterRequest{
		FullName: "Ana",
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var session domain.LoginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &session)

	payload := []byte(`{
		"description": "CDB",
		"type": "CDB",
		"invested_amount": 5000,
		"estimated_yield": "banana"
	}`)
	req = httptest.NewRequest(http.MethodPost, "/v1/investments", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST /v1/investments with bad yield = %d, want 400", rec.Code)
	}
}
