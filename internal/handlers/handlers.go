// Package handlers exposes the HTTP surface of the study service.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hidayah-ai/internal/contextutil"
	"hidayah-ai/internal/llm"
	"hidayah-ai/internal/scholar"
	"hidayah-ai/internal/session"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps service errors to HTTP status codes. Rate limits
// and missing API keys get their own statuses so clients can distinguish a
// retryable quota problem from a deployment problem.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *scholar.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	if errors.Is(err, scholar.ErrNoWindow) {
		writeError(w, http.StatusConflict, "No surah loaded; load a juz first")
		return
	}
	if errors.Is(err, llm.ErrRateLimited) {
		writeError(w, http.StatusTooManyRequests, "Model quota exhausted; try again shortly")
		return
	}
	if errors.Is(err, llm.ErrNotConfigured) {
		writeError(w, http.StatusServiceUnavailable, "Generation is not configured on this deployment")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}
