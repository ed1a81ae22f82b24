package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"github.com/sony/gobreaker"
)

// wrapErr translates transport failures into the domain error taxonomy
// so handlers can map them to status codes without knowing about
// gobreaker or context internals.
func (c *Client) wrapErr(service string, err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return &domain.ErrCircuitOpen{Service: service}
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.ErrTimeout{Operation: service + " request"}
	default:
		return &domain.ErrExternalService{Service: service, Err: err}
	}
}

// decodeSingle decodes a PostgREST representation array and returns its
// first row. Inserts with Prefer: return=representation always answer
// with an array, even for a single row.
func decodeSingle[T any](body []byte) (T, error) {
	var rows []T
	var zero T
	if err := json.Unmarshal(body, &rows); err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, errors.New("empty representation in response")
	}
	return rows[0], nil
}

// doMutation executes a write request (POST, PATCH, DELETE) with an
// optional JSON body.
func (c *Client) doMutation(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceRoleKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("supabase returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func (c *Client) doPost(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.doMutation(ctx, http.MethodPost, path, payload)
}

func (c *Client) doPatch(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.doMutation(ctx, http.MethodPatch, path, payload)
}

func (c *Client) doDelete(ctx context.Context, path string) error {
	_, err := c.doMutation(ctx, http.MethodDelete, path, nil)
	return err
}
