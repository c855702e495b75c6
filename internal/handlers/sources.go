package handlers

import (
	"context"
	"net/http"

	"hidayah-ai/internal/contextutil"
	"hidayah-ai/internal/tafsir"
)

// catalogLimit caps how many editions the sources endpoint lists.
const catalogLimit = 20

// SourceCatalog discovers and ranks tafsir editions for a language.
type SourceCatalog interface {
	Ranked(ctx context.Context, language string, max int) []tafsir.Source
}

// SourcesHandler handles HTTP requests for the tafsir source catalog.
type SourcesHandler struct {
	catalog SourceCatalog
}

// NewSourcesHandler creates a new SourcesHandler.
func NewSourcesHandler(catalog SourceCatalog) *SourcesHandler {
	return &SourcesHandler{catalog: catalog}
}

// SourcesResponse represents the HTTP response payload for the catalog.
type SourcesResponse struct {
	Language string          `json:"language"`
	Count    int             `json:"count"`
	Sources  []tafsir.Source `json:"sources"`
}

// ServeHTTP handles HTTP requests for the tafsir source catalog.
func (h *SourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		language = "en"
	}

	sources := h.catalog.Ranked(ctx, language, catalogLimit)
	if sources == nil {
		sources = []tafsir.Source{}
	}

	writeJSON(w, http.StatusOK, SourcesResponse{
		Language: language,
		Count:    len(sources),
		Sources:  sources,
	})
}
