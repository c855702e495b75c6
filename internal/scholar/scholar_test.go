package scholar_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"hidayah-ai/internal/evidence"
	"hidayah-ai/internal/llm"
	"hidayah-ai/internal/quran"
	"hidayah-ai/internal/retrieval"
	"hidayah-ai/internal/scholar"
	"hidayah-ai/internal/scholar/mocks"
	"hidayah-ai/internal/session"
)

// unitEmbedder returns the same unit vector for every text, which is all
// the document pipeline needs in these tests.
type unitEmbedder struct{}

func (unitEmbedder) EmbedTexts(_ context.Context, texts []string, _ string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

type fixture struct {
	generator  *mocks.MockGenerator
	aggregator *mocks.MockEvidenceAggregator
	hadith     *mocks.MockHadithFinder
	juz        *mocks.MockJuzLoader
	extractor  *mocks.MockExtractor
	sessions   *session.Store
	svc        *scholar.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		generator:  mocks.NewMockGenerator(ctrl),
		aggregator: mocks.NewMockEvidenceAggregator(ctrl),
		hadith:     mocks.NewMockHadithFinder(ctrl),
		juz:        mocks.NewMockJuzLoader(ctrl),
		extractor:  mocks.NewMockExtractor(ctrl),
		sessions:   session.NewStore(),
	}
	f.svc = scholar.NewService(f.generator, f.aggregator, f.hadith, f.juz, unitEmbedder{}, f.extractor, f.sessions)
	return f
}

// expectRouter stubs the intent classification call.
func (f *fixture) expectRouter(intent string) {
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts llm.GenerateOptions) (string, error) {
			if opts.Model != llm.ModelRouter {
				return "", fmt.Errorf("unexpected model %q for router call", opts.Model)
			}
			return intent, nil
		})
}

// expectScholar stubs the answer generation call.
func (f *fixture) expectScholar(answer string) {
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts llm.GenerateOptions) (string, error) {
			if opts.Model != llm.ModelScholar {
				return "", fmt.Errorf("unexpected model %q for scholar call", opts.Model)
			}
			return answer, nil
		})
}

func hadithRec(title string) evidence.Record {
	return evidence.NewHadith(evidence.HadithParams{
		SourceName: "Sunnah.com",
		Title:      title,
		Excerpt:    "narration",
		URL:        "https://sunnah.com/" + title,
	})
}

func TestAnswerResearchFlow(t *testing.T) {
	f := newFixture(t)
	f.expectRouter("SCHOLARLY_RESEARCH")
	f.hadith.EXPECT().ForTopic(gomock.Any(), "what invalidates fasting").
		Return([]evidence.Record{hadithRec("bukhari:1903")}, "")
	f.expectScholar("Fasting is invalidated by eating deliberately [H1].")

	resp, err := f.svc.Answer(context.Background(), scholar.AnswerRequest{Message: "what invalidates fasting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Intent != scholar.IntentResearch {
		t.Fatalf("intent = %s", resp.Intent)
	}
	if !strings.Contains(resp.Answer, "\n\nSources:\n") || !strings.Contains(resp.Answer, "id: H1") {
		t.Fatalf("sources block missing:\n%s", resp.Answer)
	}

	sess, err := f.sessions.Get(resp.SessionID)
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	if len(sess.History) != 2 || sess.History[0].Role != "user" {
		t.Fatalf("history = %+v", sess.History)
	}
}

func TestAnswerVerseFlow(t *testing.T) {
	f := newFixture(t)
	window := []quran.Ayah{{SurahNumber: 2, NumberInSurah: 255, SurahEnglishName: "Al-Baqarah", Arabic: "..."}}
	f.juz.EXPECT().CombinedJuz(gomock.Any(), 3).Return(window, nil)
	sess, _, err := f.svc.LoadJuz(context.Background(), "", 3, "en")
	if err != nil {
		t.Fatalf("load juz: %v", err)
	}

	tafsirRec := evidence.NewTafsir(evidence.TafsirParams{
		SourceID: "en.maududi", SourceName: "Maududi",
		SurahNumber: 2, AyahNumber: 255, Text: "commentary", Language: "en", SourceRank: 1,
	}).CloneWithMetadata(map[string]any{"ayah_ref": "2:255"})

	f.expectRouter("VERSE_LOOKUP")
	f.aggregator.EXPECT().AggregateWindow(gomock.Any(), gomock.Any(), "en").
		Return(retrieval.WindowEvidence{Records: []evidence.Record{tafsirRec}})
	f.expectScholar("The ayah affirms tawhid [T1].")

	resp, err := f.svc.Answer(context.Background(), scholar.AnswerRequest{
		SessionID: sess.ID,
		Message:   "what does ayah 255 mean",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Intent != scholar.IntentVerseLookup {
		t.Fatalf("intent = %s", resp.Intent)
	}
	if !strings.Contains(resp.Answer, "id: T1") {
		t.Fatalf("tafsir citation missing:\n%s", resp.Answer)
	}
}

func TestAnswerVerseWithoutWindowFallsBack(t *testing.T) {
	f := newFixture(t)
	f.expectRouter("VERSE_LOOKUP")
	f.hadith.EXPECT().ForTopic(gomock.Any(), gomock.Any()).Return(nil, "")
	f.expectScholar("General answer.")

	resp, err := f.svc.Answer(context.Background(), scholar.AnswerRequest{Message: "explain ayah 5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Intent != scholar.IntentResearch {
		t.Fatalf("intent = %s", resp.Intent)
	}
	if len(resp.Advisories) == 0 {
		t.Fatal("expected a fallback advisory")
	}
}

func TestAnswerRateLimited(t *testing.T) {
	f := newFixture(t)
	f.expectRouter("SCHOLARLY_RESEARCH")
	f.hadith.EXPECT().ForTopic(gomock.Any(), gomock.Any()).Return(nil, "")
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("generate: %w", llm.ErrRateLimited))

	_, err := f.svc.Answer(context.Background(), scholar.AnswerRequest{Message: "question"})
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("err = %v", err)
	}
}

func TestAnswerEmptyMessage(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Answer(context.Background(), scholar.AnswerRequest{Message: "  "})
	var verr *scholar.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
}

func TestClassifyRouterFailureDefaults(t *testing.T) {
	f := newFixture(t)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("router down"))

	if got := f.svc.Classify(context.Background(), "anything", false); got != scholar.IntentResearch {
		t.Fatalf("intent = %s", got)
	}
}

func TestClassifyPDFWithoutDocument(t *testing.T) {
	f := newFixture(t)
	f.expectRouter("The category is PDF_ANALYSIS.")

	if got := f.svc.Classify(context.Background(), "summarize my file", false); got != scholar.IntentResearch {
		t.Fatalf("intent = %s", got)
	}
}

func TestLoadJuzCapsWindow(t *testing.T) {
	f := newFixture(t)
	ayahs := make([]quran.Ayah, 15)
	for i := range ayahs {
		ayahs[i] = quran.Ayah{SurahNumber: 2, NumberInSurah: i + 1}
	}
	f.juz.EXPECT().CombinedJuz(gomock.Any(), 1).Return(ayahs, nil)

	sess, all, err := f.svc.LoadJuz(context.Background(), "", 1, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("ayahs = %d", len(all))
	}
	if len(sess.Window) != scholar.WindowSize {
		t.Fatalf("window = %d", len(sess.Window))
	}
}

func TestVerseContextWithoutWindow(t *testing.T) {
	f := newFixture(t)
	sess := f.sessions.Create("en")

	_, err := f.svc.VerseContext(context.Background(), sess.ID)
	if !errors.Is(err, scholar.ErrNoWindow) {
		t.Fatalf("err = %v", err)
	}
}

func TestIndexDocument(t *testing.T) {
	f := newFixture(t)
	f.extractor.EXPECT().ExtractFile(gomock.Any(), "/tmp/notes.pdf").
		Return(strings.Repeat("word ", 600), nil)

	sess, chunks, err := f.svc.IndexDocument(context.Background(), "", "/tmp/notes.pdf", "notes.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks != 2 {
		t.Fatalf("chunks = %d", chunks)
	}

	stored, err := f.sessions.Get(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.DocumentName != "notes.pdf" || stored.DocumentIndex == nil {
		t.Fatalf("document not stored: %+v", stored)
	}
	if stored.DocumentIndex.Len() != 2 {
		t.Fatalf("index len = %d", stored.DocumentIndex.Len())
	}
}

func TestIndexDocumentEmptyText(t *testing.T) {
	f := newFixture(t)
	f.extractor.EXPECT().ExtractFile(gomock.Any(), gomock.Any()).Return("   ", nil)

	_, _, err := f.svc.IndexDocument(context.Background(), "", "/tmp/blank.txt", "blank.txt")
	var verr *scholar.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
}
