// Package scholar orchestrates the answer pipelines: intent routing,
// evidence aggregation, prompt assembly and generation.
package scholar

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_scholar.go -package=mocks hidayah-ai/internal/scholar Generator,EvidenceAggregator,HadithFinder,JuzLoader,Extractor

import (
	"context"
	"log/slog"
	"strings"

	"hidayah-ai/internal/docindex"
	"hidayah-ai/internal/evidence"
	"hidayah-ai/internal/llm"
	"hidayah-ai/internal/prompt"
	"hidayah-ai/internal/quran"
	"hidayah-ai/internal/retrieval"
	"hidayah-ai/internal/session"
)

// WindowSize is how many ayahs of a loaded juz form the active study
// window.
const WindowSize = 10

// Generator produces text completions.
type Generator interface {
	Generate(ctx context.Context, promptText string, opts llm.GenerateOptions) (string, error)
}

// EvidenceAggregator builds the evidence ledger for an ayah window.
type EvidenceAggregator interface {
	AggregateWindow(ctx context.Context, window []quran.Ayah, language string) retrieval.WindowEvidence
}

// HadithFinder retrieves hadith evidence for a research topic.
type HadithFinder interface {
	ForTopic(ctx context.Context, topic string) ([]evidence.Record, string)
}

// JuzLoader fetches a juz with all reader translations merged.
type JuzLoader interface {
	CombinedJuz(ctx context.Context, number int) ([]quran.Ayah, error)
}

// Extractor pulls plain text out of an uploaded file.
type Extractor interface {
	ExtractFile(ctx context.Context, path string) (string, error)
}

// Service wires the answer pipelines together.
type Service struct {
	generator  Generator
	aggregator EvidenceAggregator
	hadith     HadithFinder
	juz        JuzLoader
	embedder   docindex.Embedder
	extractor  Extractor
	sessions   *session.Store
	logger     *slog.Logger
}

// NewService creates a scholar Service.
func NewService(
	generator Generator,
	aggregator EvidenceAggregator,
	hadith HadithFinder,
	juz JuzLoader,
	embedder docindex.Embedder,
	extractor Extractor,
	sessions *session.Store,
) *Service {
	return &Service{
		generator:  generator,
		aggregator: aggregator,
		hadith:     hadith,
		juz:        juz,
		embedder:   embedder,
		extractor:  extractor,
		sessions:   sessions,
		logger:     slog.Default(),
	}
}

// AnswerRequest is one user question.
type AnswerRequest struct {
	SessionID string
	Message   string
	Language  string
}

// AnswerResponse carries the generated answer with its citation block
// already attached.
type AnswerResponse struct {
	SessionID  string
	Intent     Intent
	Answer     string
	Advisories []string
}

// Answer routes a question to the right pipeline and generates a grounded
// reply. Rate limiting and missing configuration surface to the caller as
// llm sentinel errors.
func (s *Service) Answer(ctx context.Context, req AnswerRequest) (AnswerResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return AnswerResponse{}, &ValidationError{Field: "message", Message: "cannot be empty"}
	}

	sess := s.sessions.GetOrCreate(req.SessionID, req.Language)
	intent := s.Classify(ctx, message, sess.DocumentIndex != nil)

	var (
		p          prompt.Prompt
		advisories []string
	)
	switch intent {
	case IntentVerseLookup:
		if len(sess.Window) == 0 {
			intent = IntentResearch
			advisories = append(advisories, "No surah is loaded; answering as general research.")
			p, advisories = s.researchPrompt(ctx, message, advisories)
			break
		}
		ledger := s.aggregator.AggregateWindow(ctx, sess.Window, sess.TafsirLanguage)
		advisories = append(advisories, ledger.Advisories...)
		p = prompt.BuildVersePrompt(sess.Window, ledger.Records, message)

	case IntentPDFAnalysis:
		hits, err := sess.DocumentIndex.Search(ctx, s.embedder, message, docindex.DefaultTopK)
		if err != nil {
			return AnswerResponse{}, WrapError(err, "searching document")
		}
		p = prompt.BuildDocumentPrompt(message, sess.DocumentName, hits)

	default:
		p, advisories = s.researchPrompt(ctx, message, advisories)
	}

	answer, err := s.generator.Generate(ctx, p.User, llm.GenerateOptions{
		Model:           llm.ModelScholar,
		System:          p.System,
		Temperature:     0.3,
		MaxOutputTokens: 2048,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "answer generation failed", "intent", intent, "error", err)
		return AnswerResponse{}, WrapError(err, "generating answer")
	}

	full := prompt.AppendSources(answer, p.Tagged)
	if err := s.sessions.AppendHistory(sess.ID,
		session.Turn{Role: "user", Content: message},
		session.Turn{Role: "assistant", Content: full},
	); err != nil {
		s.logger.WarnContext(ctx, "recording history failed", "session_id", sess.ID, "error", err)
	}

	s.logger.InfoContext(ctx, "question answered",
		"session_id", sess.ID, "intent", intent, "citations", len(p.Tagged))
	return AnswerResponse{
		SessionID:  sess.ID,
		Intent:     intent,
		Answer:     full,
		Advisories: advisories,
	}, nil
}

func (s *Service) researchPrompt(ctx context.Context, message string, advisories []string) (prompt.Prompt, []string) {
	records, advisory := s.hadith.ForTopic(ctx, message)
	if advisory != "" {
		advisories = append(advisories, advisory)
	}
	return prompt.BuildResearchPrompt(message, records), advisories
}

// LoadJuz fetches a juz, stores its opening ayahs as the session's study
// window and returns both.
func (s *Service) LoadJuz(ctx context.Context, sessionID string, number int, language string) (*session.Session, []quran.Ayah, error) {
	ayahs, err := s.juz.CombinedJuz(ctx, number)
	if err != nil {
		return nil, nil, WrapError(err, "loading juz")
	}

	sess := s.sessions.GetOrCreate(sessionID, language)
	window := ayahs
	if len(window) > WindowSize {
		window = window[:WindowSize]
	}
	if err := s.sessions.SetWindow(sess.ID, window); err != nil {
		return nil, nil, WrapError(err, "storing window")
	}
	sess.Window = window
	return sess, ayahs, nil
}

// VerseContext rebuilds the evidence ledger for the session's current
// window without generating an answer.
func (s *Service) VerseContext(ctx context.Context, sessionID string) (retrieval.WindowEvidence, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return retrieval.WindowEvidence{}, err
	}
	if len(sess.Window) == 0 {
		return retrieval.WindowEvidence{}, ErrNoWindow
	}
	return s.aggregator.AggregateWindow(ctx, sess.Window, sess.TafsirLanguage), nil
}

// IndexDocument extracts, chunks and embeds an uploaded file, attaching
// the resulting index to the session. It returns the chunk count.
func (s *Service) IndexDocument(ctx context.Context, sessionID, path, name string) (*session.Session, int, error) {
	text, err := s.extractor.ExtractFile(ctx, path)
	if err != nil {
		return nil, 0, WrapError(err, "extracting document")
	}
	chunks, err := docindex.ChunkText(text, docindex.DefaultChunkSize, docindex.DefaultChunkOverlap)
	if err != nil {
		return nil, 0, WrapError(err, "chunking document")
	}
	if len(chunks) == 0 {
		return nil, 0, &ValidationError{Field: "file", Message: "no extractable text"}
	}

	index, err := docindex.Build(ctx, s.embedder, chunks)
	if err != nil {
		return nil, 0, WrapError(err, "indexing document")
	}

	sess := s.sessions.GetOrCreate(sessionID, "")
	if err := s.sessions.SetDocument(sess.ID, name, index); err != nil {
		return nil, 0, WrapError(err, "storing document index")
	}
	sess.DocumentName = name
	sess.DocumentIndex = index

	s.logger.InfoContext(ctx, "document indexed", "session_id", sess.ID, "document", name, "chunks", len(chunks))
	return sess, len(chunks), nil
}
