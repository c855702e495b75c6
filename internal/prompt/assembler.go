package prompt

import (
	"fmt"
	"strings"

	"hidayah-ai/internal/docindex"
	"hidayah-ai/internal/evidence"
	"hidayah-ai/internal/quran"
)

// Per-ayah evidence caps applied at prompt time. These are deliberately
// tighter than the ledger caps so the ledger can hold alternates.
const (
	TafsirPerAyah = 2
	HadithPerAyah = 1
)

// ResearchResultLimit caps how many references a research prompt cites.
const ResearchResultLimit = 3

const scholarSystem = `You are a careful Islamic studies assistant. Answer only from the evidence provided below.
Cite evidence inline using its bracketed tag, for example [T1] or [H2].
If the evidence does not answer the question, say so plainly. Never invent citations.`

const documentSystem = `You are a careful study assistant. Answer only from the document excerpts provided below.
If the excerpts do not answer the question, say so plainly.`

// Prompt is an assembled request for the generation model. Tagged lists the
// evidence the model was shown, in tag order, for the Sources block.
type Prompt struct {
	System string
	User   string
	Tagged []TaggedRecord
}

// SelectForPrompt thins a ledger to the per-ayah prompt caps, preserving
// ledger order.
func SelectForPrompt(ledger []evidence.Record) []evidence.Record {
	type slot struct {
		ayah string
		typ  evidence.Type
	}
	counts := map[slot]int{}
	var selected []evidence.Record
	for _, rec := range ledger {
		ayahRef, _ := rec.Metadata["ayah_ref"].(string)
		s := slot{ayah: ayahRef, typ: rec.Type}
		limit := TafsirPerAyah
		if rec.Type == evidence.TypeHadith {
			limit = HadithPerAyah
		}
		if counts[s] == limit {
			continue
		}
		counts[s]++
		selected = append(selected, rec)
	}
	return selected
}

// BuildVersePrompt assembles a grounded prompt for a verse-study question
// over a window of ayahs. Each ayah's excerpts follow its text, and the
// compact citation ledger closes the prompt so the model sees exactly what
// each tag refers to.
func BuildVersePrompt(window []quran.Ayah, ledger []evidence.Record, question string) Prompt {
	tagged := AssignTags(SelectForPrompt(ledger))

	byAyah := make(map[string][]TaggedRecord)
	for _, tr := range tagged {
		ref, _ := tr.Record.Metadata["ayah_ref"].(string)
		byAyah[ref] = append(byAyah[ref], tr)
	}

	var b strings.Builder
	b.WriteString("Ayahs under study:\n")
	for _, ayah := range window {
		fmt.Fprintf(&b, "\n[%s] %s (%s)\n", ayah.Ref(), ayah.SurahEnglishName, ayah.SurahName)
		fmt.Fprintf(&b, "Arabic: %s\n", ayah.Arabic)
		if ayah.English != "" {
			fmt.Fprintf(&b, "English: %s\n", ayah.English)
		}
		if ayah.Urdu != "" {
			fmt.Fprintf(&b, "Urdu: %s\n", ayah.Urdu)
		}
		for _, tr := range byAyah[ayah.Ref()] {
			fmt.Fprintf(&b, "[%s] %s (%s):\n%s\n", tr.Tag, tr.Record.SourceName, tr.Record.Type, tr.Record.Excerpt)
		}
	}

	if len(tagged) == 0 {
		b.WriteString("\nNo supporting evidence was retrieved.\n")
	} else {
		b.WriteString("\nCitations:\n")
		for _, tr := range tagged {
			b.WriteString("- ")
			b.WriteString(citationLine(tr))
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)

	return Prompt{System: scholarSystem, User: b.String(), Tagged: tagged}
}

// BuildResearchPrompt assembles a grounded prompt for a topical research
// question backed by hadith and commentary references.
func BuildResearchPrompt(question string, records []evidence.Record) Prompt {
	if len(records) > ResearchResultLimit {
		records = records[:ResearchResultLimit]
	}
	tagged := AssignTags(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Research topic: %s\n", question)
	writeEvidence(&b, tagged)
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)

	return Prompt{System: scholarSystem, User: b.String(), Tagged: tagged}
}

// BuildDocumentPrompt assembles a prompt over retrieved document chunks.
// Document answers carry no citation ledger.
func BuildDocumentPrompt(question, documentName string, hits []docindex.Hit) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Excerpts from %q:\n", documentName)
	for i, hit := range hits {
		fmt.Fprintf(&b, "\n[%d] %s\n", i+1, hit.Chunk)
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)

	return Prompt{System: documentSystem, User: b.String()}
}

func writeEvidence(b *strings.Builder, tagged []TaggedRecord) {
	if len(tagged) == 0 {
		b.WriteString("\nNo supporting evidence was retrieved.\n")
		return
	}
	b.WriteString("\nEvidence:\n")
	for _, tr := range tagged {
		rec := tr.Record
		ref := rec.Reference
		if ref == "" {
			ref, _ = rec.Metadata["ayah_ref"].(string)
		}
		fmt.Fprintf(b, "\n[%s] %s (%s, %s):\n%s\n", tr.Tag, rec.SourceName, rec.Type, ref, rec.Excerpt)
	}
}
