// Package tafsir discovers, ranks and fetches explanatory-text sources for
// individual ayahs from the AlQuran.cloud edition catalog.
package tafsir

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_quran_api.go -package=mocks hidayah-ai/internal/tafsir QuranAPI

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hidayah-ai/internal/cache"
	"hidayah-ai/internal/quran"
)

// QuranAPI is the slice of the AlQuran.cloud client this package consumes.
type QuranAPI interface {
	ListEditions(ctx context.Context, filter quran.EditionFilter) ([]quran.Edition, error)
	AyahText(ctx context.Context, surah, ayah int, edition string) (string, error)
}

// SourceTargetCount is how many ranked sources a fetch targets by default.
const SourceTargetCount = 3

// baseLanguage is retried when the requested language discovers nothing.
const baseLanguage = "ar"

const (
	catalogTTL  = 24 * time.Hour
	ayahTextTTL = time.Hour
)

var supportedLanguages = map[string]bool{"ar": true, "en": true, "ur": true}

// preferredByLanguage lists edition identifiers in preference order. Sources
// outside the list keep their discovery order after all listed ones.
var preferredByLanguage = map[string][]string{
	"ar": {"ar.muyassar", "ar.jalalayn", "ar.qurtubi", "ar.miqbas"},
	"en": {"en.maududi", "en.asad", "en.pickthall"},
	"ur": {"ur.maududi", "ur.jalandhry", "ur.kanzuliman"},
}

// Source is a candidate explanatory-text source before any ayah-specific
// text has been fetched.
type Source struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Language    string `json:"language"`
	Type        string `json:"type"`
}

// displayName is the name used for the deterministic tie-break.
func (s Source) displayName() string {
	if s.EnglishName != "" {
		return strings.ToLower(s.EnglishName)
	}
	if s.Name != "" {
		return strings.ToLower(s.Name)
	}
	return strings.ToLower(s.Identifier)
}

// Service discovers and fetches tafsir evidence.
type Service struct {
	api    QuranAPI
	cache  cache.Store
	logger *slog.Logger
}

// NewService creates a tafsir Service.
func NewService(api QuranAPI, store cache.Store) *Service {
	return &Service{
		api:    api,
		cache:  store,
		logger: slog.Default(),
	}
}

// Discover enumerates candidate tafsir editions for a language. Unknown
// languages and network failures both yield an empty list; "no sources" is
// a normal displayable state, never an error.
func (s *Service) Discover(ctx context.Context, language string) []Source {
	lang := strings.ToLower(strings.TrimSpace(language))
	if !supportedLanguages[lang] {
		return nil
	}

	key := cache.Key("tafsir-catalog", lang)
	sources, err := cache.GetOrCompute(s.cache, key, catalogTTL, func() ([]Source, error) {
		return s.discover(ctx, lang), nil
	})
	if err != nil {
		return nil
	}
	return sources
}

func (s *Service) discover(ctx context.Context, lang string) []Source {
	// First attempt: server-side filtered catalog query.
	editions, err := s.api.ListEditions(ctx, quran.EditionFilter{
		Format:   "text",
		Type:     "tafsir",
		Language: lang,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "filtered edition query failed", "language", lang, "error", err)
	} else if len(editions) > 0 {
		return toSources(editions, lang)
	}

	// Fallback: full catalog, filtered client-side.
	editions, err = s.api.ListEditions(ctx, quran.EditionFilter{})
	if err != nil {
		s.logger.WarnContext(ctx, "edition catalog fetch failed", "language", lang, "error", err)
		return nil
	}

	var filtered []quran.Edition
	for _, e := range editions {
		if e.Identifier == "" || e.Format != "text" || e.Language != lang {
			continue
		}
		// Arabic readers get commentary only; translation-language readers
		// also accept plain translations as secondary sources.
		switch lang {
		case baseLanguage:
			if e.Type != "tafsir" {
				continue
			}
		default:
			if e.Type != "tafsir" && e.Type != "translation" {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	return toSources(filtered, lang)
}

func toSources(editions []quran.Edition, lang string) []Source {
	sources := make([]Source, 0, len(editions))
	for _, e := range editions {
		if e.Identifier == "" {
			continue
		}
		language := e.Language
		if language == "" {
			language = lang
		}
		typ := e.Type
		if typ == "" {
			typ = "tafsir"
		}
		sources = append(sources, Source{
			Identifier:  e.Identifier,
			Name:        e.Name,
			EnglishName: e.EnglishName,
			Language:    language,
			Type:        typ,
		})
	}
	return sources
}

// Ranked returns the top ranked sources for a language, capped at max.
func (s *Service) Ranked(ctx context.Context, language string, max int) []Source {
	lang := strings.ToLower(strings.TrimSpace(language))
	ranked := Rank(lang, s.Discover(ctx, lang))
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
