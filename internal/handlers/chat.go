package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"hidayah-ai/internal/contextutil"
	"hidayah-ai/internal/scholar"
)

// ChatService answers user questions.
// This interface is defined from the handler's perspective (consumer-first).
type ChatService interface {
	Answer(ctx context.Context, req scholar.AnswerRequest) (scholar.AnswerResponse, error)
}

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	svc ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	SessionID  string   `json:"session_id"`
	Intent     string   `json:"intent"`
	Answer     string   `json:"answer"`
	Advisories []string `json:"advisories,omitempty"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.svc.Answer(ctx, scholar.AnswerRequest{
		SessionID: req.SessionID,
		Message:   req.Message,
		Language:  req.Language,
	})
	if err != nil {
		handleServiceError(w, r, err, "Failed to answer question")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		SessionID:  resp.SessionID,
		Intent:     string(resp.Intent),
		Answer:     resp.Answer,
		Advisories: resp.Advisories,
	})
}
