package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/google/uuid"
)

// userRow mirrors the users table.
type userRow struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		FullName:  r.FullName,
		CreatedAt: parseDate(r.CreatedAt),
	}
}

// credentialRow mirrors the auth_credentials table.
type credentialRow struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	PasswordHash   string  `json:"password_hash"`
	FailedAttempts int     `json:"failed_attempts"`
	LockedUntil    *string `json:"locked_until"`
	LastLoginAt    *string `json:"last_login_at"`
}

func (r credentialRow) toDomain() domain.AuthCredential {
	cred := domain.AuthCredential{
		ID:             r.ID,
		UserID:         r.UserID,
		PasswordHash:   r.PasswordHash,
		FailedAttempts: r.FailedAttempts,
	}
	if r.LockedUntil != nil {
		t := parseDate(*r.LockedUntil)
		cred.LockedUntil = &t
	}
	if r.LastLoginAt != nil {
		t := parseDate(*r.LastLoginAt)
		cred.LastLoginAt = &t
	}
	return cred
}

// refreshTokenRow mirrors the auth_refresh_tokens table.
type refreshTokenRow struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	TokenHash string `json:"token_hash"`
	ExpiresAt string `json:"expires_at"`
	Revoked   bool   `json:"revoked"`
}

func (r refreshTokenRow) toDomain() domain.AuthRefreshToken {
	return domain.AuthRefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: parseDate(r.ExpiresAt),
		Revoked:   r.Revoked,
	}
}

// ============================================================
// Users
// ============================================================

// GetUserByID looks a user up by primary key.
func (c *Client) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetUserByID")
	defer span.End()

	path := fmt.Sprintf("users?id=eq.%s", userID)

	var rows []userRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "user", ID: userID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// GetUserByEmail looks a user up by email address.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetUserByEmail")
	defer span.End()

	path := fmt.Sprintf("users?email=eq.%s", url.QueryEscape(email))

	var rows []userRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "user", ID: email}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// CreateUser inserts a user plus its credential row.
func (c *Client) CreateUser(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "supabase.CreateUser")
	defer span.End()

	body, err := c.doPost(ctx, "users", map[string]any{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	row, err := decodeSingle[userRow](body)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}

	_, err = c.doPost(ctx, "auth_credentials", map[string]any{
		"id":              uuid.NewString(),
		"user_id":         row.ID,
		"password_hash":   passwordHash,
		"failed_attempts": 0,
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}

	out := row.toDomain()
	return &out, nil
}

// ============================================================
// Credentials
// ============================================================

// GetCredentials returns the credential row for one user.
func (c *Client) GetCredentials(ctx context.Context, userID string) (*domain.AuthCredential, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetCredentials")
	defer span.End()

	path := fmt.Sprintf("auth_credentials?user_id=eq.%s", userID)

	var rows []credentialRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "credentials", ID: userID}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// UpdateCredentials applies a partial update to the credential row.
// Keys follow the table's column names.
func (c *Client) UpdateCredentials(ctx context.Context, userID string, updates map[string]any) error {
	ctx, span := tracer.Start(ctx, "supabase.UpdateCredentials")
	defer span.End()

	path := fmt.Sprintf("auth_credentials?user_id=eq.%s", userID)
	_, err := c.doPatch(ctx, path, updates)
	if err != nil {
		return c.wrapErr("supabase", err)
	}
	return nil
}

// ============================================================
// Refresh tokens
// ============================================================

// StoreRefreshToken persists a hashed refresh token.
func (c *Client) StoreRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	ctx, span := tracer.Start(ctx, "supabase.StoreRefreshToken")
	defer span.End()

	_, err := c.doPost(ctx, "auth_refresh_tokens", map[string]any{
		"id":         uuid.NewString(),
		"user_id":    userID,
		"token_hash": tokenHash,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"revoked":    false,
	})
	if err != nil {
		return c.wrapErr("supabase", err)
	}
	return nil
}

// GetRefreshToken looks a refresh token up by its hash.
func (c *Client) GetRefreshToken(ctx context.Context, tokenHash string) (*domain.AuthRefreshToken, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetRefreshToken")
	defer span.End()

	path := fmt.Sprintf("auth_refresh_tokens?token_hash=eq.%s", tokenHash)

	var rows []refreshTokenRow
	err := c.fetch(ctx, path, func(body []byte) error {
		return json.Unmarshal(body, &rows)
	})
	if err != nil {
		return nil, c.wrapErr("supabase", err)
	}
	if len(rows) == 0 {
		return nil, &domain.ErrNotFound{Resource: "refresh token", ID: ""}
	}
	out := rows[0].toDomain()
	return &out, nil
}

// RevokeRefreshToken marks one refresh token as revoked.
func (c *Client) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	ctx, span := tracer.Start(ctx, "supabase.RevokeRefreshToken")
	defer span.End()

	path := fmt.Sprintf("auth_refresh_tokens?token_hash=eq.%s", tokenHash)
	_, err := c.doPatch(ctx, path, map[string]any{"revoked": true})
	if err != nil {
		return c.wrapErr("supabase", err)
	}
	return nil
}

// RevokeAllRefreshTokens revokes every outstanding token of one user.
func (c *Client) RevokeAllRefreshTokens(ctx context.Context, userID string) error {
	ctx, span := tracer.Start(ctx, "supabase.RevokeAllRefreshTokens")
	defer span.End()

	path := fmt.Sprintf("auth_refresh_tokens?user_id=eq.%s&revoked=eq.false", userID)
	_, err := c.doPatch(ctx, path, map[string]any{"revoked": true})
	if err != nil {
		return c.wrapErr("supabase", err)
	}
	return nil
}
