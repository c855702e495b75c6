// Package evidence defines the canonical record shape for retrieved
// explanatory texts (tafsir commentary and hadith references) and the
// constructors that normalize raw payloads into it.
package evidence

import (
	"fmt"
	"strings"
)

// Type identifies the kind of evidence a record carries.
type Type string

const (
	TypeTafsir Type = "tafsir"
	TypeHadith Type = "hadith"
)

// LinkType describes how the record's canonical URL was obtained.
type LinkType string

const (
	LinkAPIFallback    LinkType = "api_fallback"
	LinkSearchFallback LinkType = "search_fallback"
)

// CanonicalStatus describes how much trust the canonical URL has earned.
type CanonicalStatus string

const (
	StatusUnverified     CanonicalStatus = "unverified"
	StatusDomainVerified CanonicalStatus = "domain_verified"
	StatusVerified       CanonicalStatus = "verified"
)

// Record is the canonical unit of retrieved knowledge. All fields are
// always present: Excerpt is never absent (empty string at worst) and
// Metadata is never nil.
type Record struct {
	ID              string          `json:"id"`
	Type            Type            `json:"type"`
	CitationID      string          `json:"citation_id"`
	SourceID        string          `json:"source_id"`
	SourceName      string          `json:"source_name"`
	Reference       string          `json:"reference"`
	Excerpt         string          `json:"excerpt"`
	URL             string          `json:"url"`
	CanonicalURL    string          `json:"canonical_url"`
	LinkType        LinkType        `json:"link_type"`
	CanonicalStatus CanonicalStatus `json:"canonical_status"`
	Language        string          `json:"language"`
	SourceRank      int             `json:"source_rank"`
	Metadata        map[string]any  `json:"metadata"`
	Authority       string          `json:"authority"`
}

// CloneWithMetadata returns a copy of the record with the given keys merged
// into a fresh metadata map. The receiver's metadata is not mutated.
func (r Record) CloneWithMetadata(extra map[string]any) Record {
	meta := make(map[string]any, len(r.Metadata)+len(extra))
	for k, v := range r.Metadata {
		meta[k] = v
	}
	for k, v := range extra {
		meta[k] = v
	}
	r.Metadata = meta
	return r
}

// TafsirParams carries the inputs for NewTafsir. SourceID, SourceName and
// Text must be set by the caller; everything else has a sensible default.
type TafsirParams struct {
	SourceID        string
	SourceName      string
	SurahNumber     int
	AyahNumber      int
	Text            string
	URL             string
	Language        string
	CitationID      string
	CanonicalURL    string
	LinkType        LinkType
	CanonicalStatus CanonicalStatus
	SourceRank      int
	Authority       string
	Metadata        map[string]any
}

// NewTafsir normalizes a tafsir payload into a Record. It is a structural
// builder, not a filter: an empty Text still yields a record, and the
// caller decides whether to drop it before display.
func NewTafsir(p TafsirParams) Record {
	reference := fmt.Sprintf("%d:%d", p.SurahNumber, p.AyahNumber)

	canonical := p.CanonicalURL
	if canonical == "" {
		canonical = p.URL
	}
	citationID := p.CitationID
	if citationID == "" {
		citationID = strings.ToLower(fmt.Sprintf("tafsir:%s:%s", p.SourceID, reference))
	}
	linkType := p.LinkType
	if linkType == "" {
		linkType = LinkAPIFallback
	}
	status := p.CanonicalStatus
	if status == "" {
		status = StatusUnverified
	}
	authority := p.Authority
	if authority == "" {
		authority = "Classical Tafseer"
	}

	return Record{
		ID:              citationID,
		Type:            TypeTafsir,
		CitationID:      citationID,
		SourceID:        p.SourceID,
		SourceName:      p.SourceName,
		Reference:       reference,
		Excerpt:         strings.TrimSpace(p.Text),
		URL:             canonical,
		CanonicalURL:    canonical,
		LinkType:        linkType,
		CanonicalStatus: status,
		Language:        p.Language,
		SourceRank:      p.SourceRank,
		Metadata:        cloneMetadata(p.Metadata),
		Authority:       authority,
	}
}

// HadithParams carries the inputs for NewHadith. SourceName and Title must
// be set by the caller.
type HadithParams struct {
	SourceName      string
	Title           string
	Excerpt         string
	URL             string
	Language        string
	CitationID      string
	CanonicalURL    string
	LinkType        LinkType
	CanonicalStatus CanonicalStatus
	SourceRank      int
	Authority       string
	Metadata        map[string]any
}

// NewHadith normalizes a hadith or search-derived payload into a Record.
func NewHadith(p HadithParams) Record {
	sourceID := strings.ReplaceAll(strings.ToLower(p.SourceName), " ", "_")

	canonical := p.CanonicalURL
	if canonical == "" {
		canonical = p.URL
	}
	citationID := p.CitationID
	if citationID == "" {
		citationID = strings.ToLower(fmt.Sprintf("hadith:%s:%s:%s", sourceID, p.Title, canonical))
	}
	linkType := p.LinkType
	if linkType == "" {
		linkType = LinkSearchFallback
	}
	status := p.CanonicalStatus
	if status == "" {
		status = StatusUnverified
	}
	language := p.Language
	if language == "" {
		language = "en"
	}
	authority := p.Authority
	if authority == "" {
		authority = "Hadith Reference"
	}

	return Record{
		ID:              citationID,
		Type:            TypeHadith,
		CitationID:      citationID,
		SourceID:        sourceID,
		SourceName:      p.SourceName,
		Reference:       p.Title,
		Excerpt:         strings.TrimSpace(p.Excerpt),
		URL:             canonical,
		CanonicalURL:    canonical,
		LinkType:        linkType,
		CanonicalStatus: status,
		Language:        language,
		SourceRank:      p.SourceRank,
		Metadata:        cloneMetadata(p.Metadata),
		Authority:       authority,
	}
}

func cloneMetadata(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
