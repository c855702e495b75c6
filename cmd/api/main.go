package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"hidayah-ai/internal/cache"
	"hidayah-ai/internal/config"
	"hidayah-ai/internal/docindex"
	"hidayah-ai/internal/hadith"
	"hidayah-ai/internal/handlers"
	"hidayah-ai/internal/http"
	"hidayah-ai/internal/llm"
	"hidayah-ai/internal/quran"
	"hidayah-ai/internal/retrieval"
	"hidayah-ai/internal/scholar"
	"hidayah-ai/internal/session"
	"hidayah-ai/internal/tafsir"
	"hidayah-ai/internal/websearch"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	level, err := cfg.SlogLevel()
	if err != nil {
		log.Fatalf("Failed to parse log level: %v", err)
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", level.String(), "format", cfg.LogFormat)

	// Shared in-process cache; fall back to a no-op cache rather than die
	var store cache.Store
	memory, err := cache.NewMemory()
	if err != nil {
		slog.Warn("Cache unavailable, running without caching", "error", err)
		store = cache.Noop{}
	} else {
		store = memory
	}

	ctx := context.Background()

	// Quran text and tafsir catalog share one API client
	quranClient := quran.NewClient(cfg.QuranAPIBase, store)
	tafsirService := tafsir.NewService(quranClient, store)
	slog.Info("Quran API client initialized", "base_url", cfg.QuranAPIBase)

	// Web search for hadith; degrades gracefully when the key is missing
	tavily := websearch.NewClient(websearch.DefaultBaseURL, cfg.TavilyAPIKey)
	hadithService := hadith.NewService(tavily, store)
	if !tavily.Configured() {
		slog.Warn("TAVILY_API_KEY not set, hadith search disabled")
	}

	aggregator := retrieval.NewAggregator(tafsirService, hadithService)

	// Gemini client for generation and embeddings
	gemini, err := llm.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	if !gemini.Configured() {
		slog.Warn("GEMINI_API_KEY not set, answer generation disabled")
	}

	// Document extraction; PDF support needs the converter sidecar
	extractor := docindex.NewExtractor(cfg.ConverterURL)
	if cfg.ConverterURL == "" {
		slog.Warn("CONVERTER_URL not set, PDF extraction disabled")
	}

	sessions := session.NewStore()

	scholarService := scholar.NewService(
		gemini,
		aggregator,
		hadithService,
		quranClient,
		gemini,
		extractor,
		sessions,
	)
	slog.Info("Scholar service initialized")

	// Create router with dependencies
	deps := &http.Deps{
		Chat:         scholarService,
		Juz:          scholarService,
		Documents:    scholarService,
		VerseContext: scholarService,
		Sources:      tafsirService,
		Capabilities: handlers.Capabilities{
			Generation: gemini.Configured(),
			WebSearch:  tavily.Configured(),
			Converter:  cfg.ConverterURL != "",
		},
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
