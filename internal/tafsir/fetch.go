package tafsir

import (
	"context"
	"fmt"

	"hidayah-ai/internal/cache"
	"hidayah-ai/internal/evidence"
)

// FetchForAyah gathers up to maxSources tafsir records for one ayah.
// When the requested language discovers no sources it retries in Arabic and
// stamps the fallback on every returned record. Individual source failures
// are skipped; an empty result is a valid answer.
func (s *Service) FetchForAyah(ctx context.Context, surah, ayah int, language string, maxSources int) []evidence.Record {
	if maxSources <= 0 {
		return nil
	}

	resolved := language
	sources := s.Ranked(ctx, language, maxSources)
	fellBack := false
	// Only supported translation languages fall back to Arabic; an unknown
	// language code stays empty.
	if len(sources) == 0 && language != baseLanguage && supportedLanguages[language] {
		sources = s.Ranked(ctx, baseLanguage, maxSources)
		resolved = baseLanguage
		fellBack = true
	}

	records := make([]evidence.Record, 0, len(sources))
	for i, src := range sources {
		text, err := s.ayahText(ctx, surah, ayah, src.Identifier)
		if err != nil {
			s.logger.WarnContext(ctx, "tafsir source skipped",
				"edition", src.Identifier, "surah", surah, "ayah", ayah, "error", err)
			continue
		}
		if text == "" {
			continue
		}

		name := src.EnglishName
		if name == "" {
			name = src.Name
		}
		rec := evidence.NewTafsir(evidence.TafsirParams{
			SourceID:    src.Identifier,
			SourceName:  name,
			SurahNumber: surah,
			AyahNumber:  ayah,
			Text:        text,
			Language:    src.Language,
			SourceRank:  i + 1,
			URL:         fmt.Sprintf("https://api.alquran.cloud/v1/ayah/%d:%d/%s", surah, ayah, src.Identifier),
		})
		if fellBack {
			rec.Metadata["fallback_language_used"] = true
			rec.Metadata["requested_language"] = language
			rec.Metadata["resolved_language"] = resolved
		}
		records = append(records, rec)
		if len(records) == maxSources {
			break
		}
	}
	return records
}

func (s *Service) ayahText(ctx context.Context, surah, ayah int, edition string) (string, error) {
	key := cache.Key("tafsir-text", edition, surah, ayah)
	return cache.GetOrCompute(s.cache, key, ayahTextTTL, func() (string, error) {
		return s.api.AyahText(ctx, surah, ayah, edition)
	})
}
