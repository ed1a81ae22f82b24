package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/port"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost      = 12
	maxLoginPerWin  = 5
	loginLockWindow = 30 * time.Minute
	minPasswordLen  = 8
)

// AuthService manages user accounts, sessions and tokens.
type AuthService struct {
	store      port.AuthStore
	logger     *zap.Logger
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates an AuthService.
func NewAuthService(store port.AuthStore, logger *zap.Logger, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		store:      store,
		logger:     logger,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a user account and returns a fresh session.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.FullName == "" {
		return nil, &domain.ErrMissingField{Field: "fullName"}
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, &domain.ErrInvalidEnumValue{Field: "email", Value: req.Email}
	}
	if len(req.Password) < minPasswordLen {
		return nil, &domain.ErrUnauthorized{Message: "password must be at least 8 characters"}
	}

	var notFound *domain.ErrNotFound
	if _, err := s.store.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, &domain.ErrConflict{Message: "email already registered"}
	} else if !errors.As(err, &notFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		FullName: req.FullName,
	}
	created, err := s.store.CreateUser(ctx, user, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", created.ID),
	)
	return s.issueSession(ctx, created)
}

// Login verifies credentials and returns a fresh session. Repeated
// failures lock the account for a cool-down window.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			// Same answer as a wrong password so emails cannot be probed.
			return nil, &domain.ErrUnauthorized{Message: "invalid email or password"}
		}
		return nil, err
	}

	cred, err := s.store.GetCredentials(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if cred.LockedUntil != nil && now.Before(*cred.LockedUntil) {
		return nil, &domain.ErrUnauthorized{Message: "account temporarily locked, try again later"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		attempts := cred.FailedAttempts + 1
		updates := map[string]any{"failed_attempts": attempts}
		if attempts >= maxLoginPerWin {
			lockedUntil := now.Add(loginLockWindow)
			updates["locked_until"] = lockedUntil.UTC().Format(time.RFC3339)
			s.logger.Warn("account locked after repeated failures",
				zap.String("user_id", user.ID),
			)
		}
		if uerr := s.store.UpdateCredentials(ctx, user.ID, updates); uerr != nil {
			s.logger.Error("failed to record login failure", zap.Error(uerr))
		}
		return nil, &domain.ErrUnauthorized{Message: "invalid email or password"}
	}

	if err := s.store.UpdateCredentials(ctx, user.ID, map[string]any{
		"failed_attempts": 0,
		"locked_until":    nil,
		"last_login_at":   now.UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.Error("failed to reset login state", zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
	)
	return s.issueSession(ctx, user)
}

// Refresh rotates a refresh token and returns a new session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "AuthService.Refresh")
	defer span.End()

	stored, err := s.store.GetRefreshToken(ctx, hashToken(refreshToken))
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, &domain.ErrUnauthorized{Message: "invalid refresh token"}
		}
		return nil, err
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, &domain.ErrUnauthorized{Message: "refresh token expired or revoked"}
	}

	user, err := s.store.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	// Rotation: the used token is dead from here on.
	if err := s.store.RevokeRefreshToken(ctx, stored.TokenHash); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

// Logout revokes every outstanding refresh token of the user.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	ctx, span := tracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	if err := s.store.RevokeAllRefreshTokens(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user logged out",
		zap.String("user_id", userID),
	)
	return nil
}
