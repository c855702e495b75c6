// Package http builds the service router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hidayah-ai/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Chat         handlers.ChatService
	Juz          handlers.JuzService
	Documents    handlers.DocumentService
	VerseContext handlers.ContextService
	Sources      handlers.SourceCatalog
	Capabilities handlers.Capabilities
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", handlers.NewChatHandler(deps.Chat))
		r.Method(http.MethodPost, "/documents", handlers.NewDocumentHandler(deps.Documents))
		r.Method(http.MethodGet, "/juz/{number}", handlers.NewJuzHandler(deps.Juz))
		r.Method(http.MethodGet, "/sources", handlers.NewSourcesHandler(deps.Sources))
		r.Method(http.MethodGet, "/verse-context", handlers.NewVerseContextHandler(deps.VerseContext))
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Capabilities))
	})

	return r
}
