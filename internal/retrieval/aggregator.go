// Package retrieval assembles the evidence ledger for a window of ayahs.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"hidayah-ai/internal/evidence"
	"hidayah-ai/internal/quran"
	"hidayah-ai/internal/tafsir"
)

// LedgerHadithPerAyah caps how many hadith records one ayah contributes to
// the ledger. Prompt assembly applies its own tighter cap later.
const LedgerHadithPerAyah = 2

// TafsirFetcher yields tafsir evidence for a single ayah.
type TafsirFetcher interface {
	FetchForAyah(ctx context.Context, surah, ayah int, language string, maxSources int) []evidence.Record
}

// HadithFetcher yields hadith evidence for a topic, with an optional
// advisory when its backing search is degraded.
type HadithFetcher interface {
	ForTopic(ctx context.Context, topic string) ([]evidence.Record, string)
}

// WindowEvidence holds everything retrieved for one ayah window: the full
// per-ayah fetch results and the deduplicated citation ledger built from
// them. The ledger caps hadith per ayah; the maps do not.
type WindowEvidence struct {
	TafsirByAyah map[string][]evidence.Record
	HadithByAyah map[string][]evidence.Record
	Records      []evidence.Record
	Advisories   []string
}

// Aggregator builds window ledgers from per-ayah fetchers.
type Aggregator struct {
	tafsir TafsirFetcher
	hadith HadithFetcher
}

// NewAggregator creates an Aggregator.
func NewAggregator(t TafsirFetcher, h HadithFetcher) *Aggregator {
	return &Aggregator{tafsir: t, hadith: h}
}

// AggregateWindow walks the window ayah by ayah, appending each ayah's
// tafsir evidence and then its first hadith hits, so citation numbering
// follows reading order. Every record is stamped with the ayah it belongs
// to and duplicates are dropped on first-seen citation id.
func (a *Aggregator) AggregateWindow(ctx context.Context, window []quran.Ayah, language string) WindowEvidence {
	out := WindowEvidence{
		TafsirByAyah: make(map[string][]evidence.Record),
		HadithByAyah: make(map[string][]evidence.Record),
	}
	seen := make(map[string]bool)
	advised := make(map[string]bool)

	add := func(rec evidence.Record, ref string) {
		stamped := rec.CloneWithMetadata(map[string]any{"ayah_ref": ref})
		if seen[stamped.CitationID] {
			return
		}
		seen[stamped.CitationID] = true
		out.Records = append(out.Records, stamped)
	}

	for _, ayah := range window {
		ref := ayah.Ref()

		tafsirRecords := a.tafsir.FetchForAyah(ctx, ayah.SurahNumber, ayah.NumberInSurah, language, tafsir.SourceTargetCount)
		out.TafsirByAyah[ref] = tafsirRecords

		hadithRecords, advisory := a.hadith.ForTopic(ctx, hadithTopic(ayah))
		out.HadithByAyah[ref] = hadithRecords
		if advisory != "" && !advised[advisory] {
			advised[advisory] = true
			out.Advisories = append(out.Advisories, advisory)
		}

		for _, rec := range tafsirRecords {
			add(rec, ref)
		}
		for i, rec := range hadithRecords {
			if i == LedgerHadithPerAyah {
				break
			}
			add(rec, ref)
		}
	}
	return out
}

// hadithTopicExcerptLen bounds the translated-text excerpt in the query.
const hadithTopicExcerptLen = 140

// hadithTopic builds the search topic for an ayah: verse identity plus a
// bounded excerpt of its translated text.
func hadithTopic(ayah quran.Ayah) string {
	topic := fmt.Sprintf("%s %d related hadith explanation", ayah.SurahName, ayah.NumberInSurah)
	text := strings.TrimSpace(ayah.English)
	if text == "" {
		return topic
	}
	if runes := []rune(text); len(runes) > hadithTopicExcerptLen {
		text = string(runes[:hadithTopicExcerptLen])
	}
	return topic + " " + text
}
