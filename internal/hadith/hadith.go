// Package hadith fetches hadith and scholarly references from a curated set
// of trusted domains via web search.
package hadith

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"hidayah-ai/internal/cache"
	"hidayah-ai/internal/evidence"
	"hidayah-ai/internal/websearch"
)

// MaxResults is the number of search hits requested per topic.
const MaxResults = 3

const (
	topicTTL       = 15 * time.Minute
	excerptMaxLen  = 140
	defaultListing = "Sunnah Reference"
)

// TrustedDomains are the only hosts whose results are kept.
var TrustedDomains = []string{"sunnah.com", "islamqa.info", "quran.com", "islamweb.net"}

// domainProfile carries the display and verification attributes a trusted
// domain confers on its results.
type domainProfile struct {
	sourceName string
	authority  string
	status     evidence.CanonicalStatus
}

var domainProfiles = map[string]domainProfile{
	"sunnah.com":   {sourceName: "Sunnah.com", authority: "Hadith Corpus Reference", status: evidence.StatusDomainVerified},
	"islamqa.info": {sourceName: "IslamQA Commentary", authority: "Scholarly Commentary", status: evidence.StatusUnverified},
}

// Searcher is the web search capability this package consumes.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error)
}

// Service turns topics into trusted hadith evidence.
type Service struct {
	searcher Searcher
	cache    cache.Store
	logger   *slog.Logger
}

// NewService creates a hadith Service.
func NewService(searcher Searcher, store cache.Store) *Service {
	return &Service{
		searcher: searcher,
		cache:    store,
		logger:   slog.Default(),
	}
}

// ForTopic searches the trusted domains for a topic and normalizes the hits
// into evidence records. Search failures degrade to an advisory string so
// the caller can still answer from other evidence.
func (s *Service) ForTopic(ctx context.Context, topic string) ([]evidence.Record, string) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ""
	}

	key := cache.Key("hadith", strings.ToLower(topic))
	records, err := cache.GetOrCompute(s.cache, key, topicTTL, func() ([]evidence.Record, error) {
		query := websearch.SiteQuery(topic, TrustedDomains)
		results, err := s.searcher.Search(ctx, query, MaxResults)
		if err != nil {
			return nil, err
		}
		return s.normalize(results), nil
	})
	if err != nil {
		if errors.Is(err, websearch.ErrNotConfigured) {
			return nil, "Web search is not configured; hadith citations are unavailable for this answer."
		}
		s.logger.WarnContext(ctx, "hadith search failed", "topic", topic, "error", err)
		return nil, "Hadith search failed; this answer relies on tafsir evidence only."
	}
	return records, ""
}

func (s *Service) normalize(results []websearch.Result) []evidence.Record {
	records := make([]evidence.Record, 0, len(results))
	for _, r := range results {
		// Results without a URL, including the synthesized search summary,
		// have no host to verify and carry no citable reference.
		if r.URL == "" {
			continue
		}

		domain, ok := trustedHost(r.URL)
		if !ok {
			continue
		}
		profile, curated := domainProfiles[domain]
		if !curated {
			profile = domainProfile{sourceName: defaultListing, authority: "Hadith Corpus Reference", status: evidence.StatusDomainVerified}
		}
		records = append(records, evidence.NewHadith(evidence.HadithParams{
			SourceName:      profile.sourceName,
			Title:           r.Title,
			Excerpt:         truncate(r.Content, excerptMaxLen),
			URL:             r.URL,
			CanonicalStatus: profile.status,
			SourceRank:      len(records) + 1,
			Authority:       profile.authority,
			Metadata:        map[string]any{"domain": domain},
		}))
	}
	if len(records) > MaxResults {
		records = records[:MaxResults]
	}
	return records
}

// trustedHost reports whether a URL's hostname is a trusted domain or a
// subdomain of one. Lookalike hosts that merely end with a trusted name do
// not match.
func trustedHost(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	for _, d := range TrustedDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return d, true
		}
	}
	return "", false
}

// truncate caps text at max runes, never cutting mid-rune.
func truncate(text string, max int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max])
}
