package handlers

import (
	"net/http"
	"time"

	"hidayah-ai/internal/contextutil"
)

// Capabilities reports which optional integrations are configured.
type Capabilities struct {
	Generation bool
	WebSearch  bool
	Converter  bool
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	caps Capabilities
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(caps Capabilities) *HealthHandler {
	return &HealthHandler{caps: caps}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// ServeHTTP handles HTTP requests for health checks. Missing integrations
// report "degraded" rather than failing: the service still serves Quran
// text without any API key.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	checks := map[string]string{
		"generation": capStatus(h.caps.Generation),
		"web_search": capStatus(h.caps.WebSearch),
		"converter":  capStatus(h.caps.Converter),
	}

	status := "healthy"
	for _, v := range checks {
		if v != "ok" {
			status = "degraded"
			break
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

func capStatus(configured bool) string {
	if configured {
		return "ok"
	}
	return "not_configured"
}
