package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthResponse represents the aggregate health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthChecker is a component that can report its own health.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Health serves the health endpoint, running any registered checkers
// with a short deadline.
type Health struct {
	Version  string
	Checkers map[string]HealthChecker
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.Checkers))
	status := "healthy"
	for name, checker := range h.Checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			checks[name] = "unhealthy"
			status = "unhealthy"
		} else {
			checks[name] = "healthy"
		}
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, HealthResponse{
		Status:    status,
		Version:   h.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
