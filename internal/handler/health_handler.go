package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/joaquimoiio/financas-go/internal/domain"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func healthzHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		start := time.Now()
		err := store.Ping(ctx)
		latency := time.Since(start)

		storeHealth := domain.ServiceHealth{
			Name:        "supabase",
			Status:      "healthy",
			LatencyMs:   latency.Milliseconds(),
			LastChecked: time.Now().UTC().Format(time.RFC3339),
		}
		overall := "healthy"
		status := http.StatusOK
		if err != nil {
			storeHealth.Status = "unhealthy"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, domain.HealthStatus{
			Status:   overall,
			Services: []domain.ServiceHealth{storeHealth},
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
