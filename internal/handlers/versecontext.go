package handlers

import (
	"context"
	"net/http"

	"hidayah-ai/internal/contextutil"
	"hidayah-ai/internal/evidence"
	"hidayah-ai/internal/retrieval"
)

// ContextService rebuilds the evidence ledger for a session's window.
type ContextService interface {
	VerseContext(ctx context.Context, sessionID string) (retrieval.WindowEvidence, error)
}

// VerseContextHandler handles HTTP requests for window evidence.
type VerseContextHandler struct {
	svc ContextService
}

// NewVerseContextHandler creates a new VerseContextHandler.
func NewVerseContextHandler(svc ContextService) *VerseContextHandler {
	return &VerseContextHandler{svc: svc}
}

// VerseContextResponse represents the HTTP response payload for window
// evidence.
type VerseContextResponse struct {
	Count      int               `json:"count"`
	Citations  []evidence.Record `json:"citations"`
	Advisories []string          `json:"advisories,omitempty"`
}

// ServeHTTP handles HTTP requests for window evidence.
func (h *VerseContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	ledger, err := h.svc.VerseContext(ctx, sessionID)
	if err != nil {
		handleServiceError(w, r, err, "Failed to build verse context")
		return
	}

	citations := ledger.Records
	if citations == nil {
		citations = []evidence.Record{}
	}
	writeJSON(w, http.StatusOK, VerseContextResponse{
		Count:      len(citations),
		Citations:  citations,
		Advisories: ledger.Advisories,
	})
}
