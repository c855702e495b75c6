package scholar

import (
	"context"
	"fmt"
	"strings"

	"hidayah-ai/internal/llm"
)

// Intent routes a question to one of the answer pipelines.
type Intent string

const (
	IntentVerseLookup Intent = "VERSE_LOOKUP"
	IntentResearch    Intent = "SCHOLARLY_RESEARCH"
	IntentPDFAnalysis Intent = "PDF_ANALYSIS"
)

const routerSystem = `Classify the user's question into exactly one category:
VERSE_LOOKUP - asks about specific ayahs, their meaning or tafsir
SCHOLARLY_RESEARCH - asks a general fiqh, hadith or doctrine question
PDF_ANALYSIS - asks about an uploaded document
Reply with the category name only.`

// Classify routes a question with the lightweight router model. The reply
// is matched loosely since small models pad their output; anything
// unrecognizable, including router failures, defaults to research.
func (s *Service) Classify(ctx context.Context, question string, hasDocument bool) Intent {
	prompt := fmt.Sprintf("Document uploaded: %t\nQuestion: %s", hasDocument, question)
	reply, err := s.generator.Generate(ctx, prompt, llm.GenerateOptions{
		Model:           llm.ModelRouter,
		System:          routerSystem,
		MaxOutputTokens: 16,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "intent classification failed", "error", err)
		return IntentResearch
	}
	intent := parseIntent(reply)
	if intent == IntentPDFAnalysis && !hasDocument {
		return IntentResearch
	}
	return intent
}

func parseIntent(reply string) Intent {
	upper := strings.ToUpper(reply)
	for _, intent := range []Intent{IntentVerseLookup, IntentPDFAnalysis, IntentResearch} {
		if strings.Contains(upper, string(intent)) {
			return intent
		}
	}
	return IntentResearch
}
