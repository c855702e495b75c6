// Package prompt assembles grounded prompts and the machine-readable
// Sources block that travels with every generated answer.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"hidayah-ai/internal/evidence"
)

// sourcesMarker separates the prose answer from its citation block.
const sourcesMarker = "\n\nSources:\n"

// TaggedRecord pairs an evidence record with its short citation tag.
type TaggedRecord struct {
	Tag    string
	Record evidence.Record
}

// AssignTags gives each record a short tag with a per-type counter, in
// input order: tafsir records get T1, T2... and hadith records H1, H2...
func AssignTags(records []evidence.Record) []TaggedRecord {
	tagged := make([]TaggedRecord, 0, len(records))
	counters := map[evidence.Type]int{}
	for _, rec := range records {
		counters[rec.Type]++
		prefix := "T"
		if rec.Type == evidence.TypeHadith {
			prefix = "H"
		}
		tagged = append(tagged, TaggedRecord{
			Tag:    fmt.Sprintf("%s%d", prefix, counters[rec.Type]),
			Record: rec,
		})
	}
	return tagged
}

// SourceLine is one parsed citation from a Sources block.
type SourceLine struct {
	Type      string
	Tag       string
	Source    string
	Ref       string
	Ayah      string
	Lang      string
	Rank      int
	Canonical string
	URL       string
}

// citationLine renders one tagged record in the compact per-citation format
// shared by the prompt ledger and the appended Sources block.
func citationLine(tr TaggedRecord) string {
	rec := tr.Record
	ayahRef, _ := rec.Metadata["ayah_ref"].(string)
	return fmt.Sprintf("type: %s | id: %s | source: %s | ref: %s | ayah: %s | lang: %s | rank: %d | canonical: %s | url: %s",
		rec.Type, tr.Tag, rec.SourceName, rec.Reference, ayahRef, rec.Language, rec.SourceRank, rec.CanonicalStatus, rec.CanonicalURL)
}

// AppendSources attaches the citation block to an answer. An empty tag set
// leaves the answer untouched.
func AppendSources(answer string, tagged []TaggedRecord) string {
	if len(tagged) == 0 {
		return answer
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(answer, "\n"))
	b.WriteString(sourcesMarker)
	for _, tr := range tagged {
		b.WriteString("- ")
		b.WriteString(citationLine(tr))
		b.WriteString("\n")
	}
	return b.String()
}

// SplitAnswerAndSources separates an answer from its citation block. Text
// without a marker comes back whole with no sources. Malformed lines are
// skipped rather than failing the whole block.
func SplitAnswerAndSources(text string) (string, []SourceLine) {
	idx := strings.LastIndex(text, sourcesMarker)
	if idx < 0 {
		return text, nil
	}
	answer := strings.TrimRight(text[:idx], "\n")

	var sources []SourceLine
	for _, line := range strings.Split(text[idx+len(sourcesMarker):], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		src, ok := parseSourceLine(strings.TrimPrefix(line, "- "))
		if !ok {
			continue
		}
		sources = append(sources, src)
	}
	return answer, sources
}

func parseSourceLine(line string) (SourceLine, bool) {
	var src SourceLine
	seen := false
	for _, field := range strings.Split(line, " | ") {
		key, value, ok := strings.Cut(field, ": ")
		if !ok {
			// A trailing "key:" with an empty value is still a field.
			key, value, ok = strings.Cut(field, ":")
			if !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		seen = true
		switch key {
		case "type":
			src.Type = value
		case "id":
			src.Tag = value
		case "source":
			src.Source = value
		case "ref":
			src.Ref = value
		case "ayah":
			src.Ayah = value
		case "lang":
			src.Lang = value
		case "rank":
			src.Rank, _ = strconv.Atoi(value)
		case "canonical":
			src.Canonical = value
		case "url":
			src.URL = value
		}
	}
	return src, seen && src.Tag != ""
}
