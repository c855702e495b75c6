package docindex

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hidayah-ai/internal/llm"
)

// axisEmbedder maps known texts onto fixed vectors so similarity order is
// fully determined by the test.
type axisEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (e axisEmbedder) EmbedTexts(_ context.Context, texts []string, _ string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v, ok := e.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no vector for %q", text)
		}
		out[i] = append([]float32(nil), v...)
	}
	return out, nil
}

func TestBuildAndSearch(t *testing.T) {
	embedder := axisEmbedder{vectors: map[string][]float32{
		"patience in hardship": {2, 0, 0},
		"rules of inheritance": {0, 3, 0},
		"stories of the prophets": {1, 0, 1},
		"what does it say about patience": {1, 0.1, 0},
	}}

	ix, err := Build(context.Background(), embedder, []string{
		"patience in hardship", "rules of inheritance", "stories of the prophets",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ix.Len() != 3 {
		t.Fatalf("len = %d", ix.Len())
	}

	hits, err := ix.Search(context.Background(), embedder, "what does it say about patience", 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("hits = %+v", hits)
	}
	if hits[0].Chunk != "patience in hardship" {
		t.Fatalf("best hit = %q", hits[0].Chunk)
	}
	if hits[0].Score <= hits[1].Score {
		t.Fatalf("scores not descending: %+v", hits)
	}
}

func TestBuildZeroVector(t *testing.T) {
	embedder := axisEmbedder{vectors: map[string][]float32{
		"empty":  {0, 0, 0},
		"filled": {0, 1, 0},
		"query":  {0, 1, 0},
	}}

	ix, err := Build(context.Background(), embedder, []string{"empty", "filled"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	hits, err := ix.Search(context.Background(), embedder, "query", 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if hits[0].Chunk != "filled" || hits[1].Score != 0 {
		t.Fatalf("zero vector handling wrong: %+v", hits)
	}
}

func TestSearchZeroQueryVector(t *testing.T) {
	embedder := axisEmbedder{vectors: map[string][]float32{
		"filled": {0, 1, 0},
		"query":  {0, 0, 0},
	}}

	ix, err := Build(context.Background(), embedder, []string{"filled"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	hits, err := ix.Search(context.Background(), embedder, "query", 2)
	if err != nil || hits != nil {
		t.Fatalf("zero query search: %v / %+v", err, hits)
	}
}

func TestBuildPropagatesRateLimit(t *testing.T) {
	embedder := axisEmbedder{err: fmt.Errorf("embed: %w", llm.ErrRateLimited)}

	_, err := Build(context.Background(), embedder, []string{"chunk"})
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("err = %v", err)
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	ix, err := Build(context.Background(), axisEmbedder{}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	hits, err := ix.Search(context.Background(), axisEmbedder{}, "anything", 3)
	if err != nil || hits != nil {
		t.Fatalf("empty index search: %v / %+v", err, hits)
	}
}
