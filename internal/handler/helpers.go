// Package handler wires the HTTP API: routing, middleware and the
// request handlers for every endpoint.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleServiceError maps domain errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var (
		invalidAmount *domain.ErrInvalidAmount
		invalidYield  *domain.ErrInvalidYield
		invalidEnum   *domain.ErrInvalidEnumValue
		missingField  *domain.ErrMissingField
		notFound      *domain.ErrNotFound
		unauthorized  *domain.ErrUnauthorized
		forbidden     *domain.ErrForbidden
		conflict      *domain.ErrConflict
		circuitOpen   *domain.ErrCircuitOpen
		timeout       *domain.ErrTimeout
	)

	switch {
	case errors.As(err, &invalidAmount),
		errors.As(err, &invalidYield),
		errors.As(err, &invalidEnum),
		errors.As(err, &missingField):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &unauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &forbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &circuitOpen):
		writeError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	case errors.As(err, &timeout):
		writeError(w, http.StatusGatewayTimeout, "request timed out")
	default:
		logger.Error("unhandled service error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parsePeriod reads the optional ?month= and ?year= query parameters,
// defaulting to the current month.
func parsePeriod(r *http.Request) (int, int, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, &domain.ErrInvalidEnumValue{Field: "month", Value: v}
		}
		month = m
	}
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 {
			return 0, 0, &domain.ErrInvalidEnumValue{Field: "year", Value: v}
		}
		year = y
	}
	return month, year, nil
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
