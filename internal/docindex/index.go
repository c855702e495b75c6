package docindex

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/viterin/vek/vek32"

	"hidayah-ai/internal/llm"
)

// DefaultTopK is how many chunks a search returns by default.
const DefaultTopK = 5

// Embedder is the embedding capability this package consumes.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string, taskType string) ([][]float32, error)
}

// Hit is one retrieved chunk with its similarity score.
type Hit struct {
	Chunk string
	Score float32
}

// Index holds unit-normalized chunk vectors for one document. It is built
// once and read-only afterwards, so concurrent searches need no locking.
type Index struct {
	chunks  []string
	vectors [][]float32
}

// Build embeds chunks and assembles an index. Embedding failures, including
// llm.ErrRateLimited, abort the build; a partially embedded index is never
// returned.
func Build(ctx context.Context, embedder Embedder, chunks []string) (*Index, error) {
	if len(chunks) == 0 {
		return &Index{}, nil
	}

	vectors, err := embedder.EmbedTexts(ctx, chunks, llm.TaskRetrievalDocument)
	if err != nil {
		return nil, fmt.Errorf("embedding chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding chunks: got %d vectors for %d chunks", len(vectors), len(chunks))
	}
	for _, v := range vectors {
		normalize(v)
	}

	owned := make([]string, len(chunks))
	copy(owned, chunks)
	return &Index{chunks: owned, vectors: vectors}, nil
}

// Len reports how many chunks the index holds.
func (ix *Index) Len() int { return len(ix.chunks) }

// Search embeds the query and returns the topK most similar chunks by
// inner product, best first.
func (ix *Index) Search(ctx context.Context, embedder Embedder, query string, topK int) ([]Hit, error) {
	if topK <= 0 || ix.Len() == 0 {
		return nil, nil
	}

	vectors, err := embedder.EmbedTexts(ctx, []string{query}, llm.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding query: got %d vectors", len(vectors))
	}
	queryVec := vectors[0]
	normalize(queryVec)
	if isZero(queryVec) {
		return nil, nil
	}

	hits := make([]Hit, 0, ix.Len())
	for i, v := range ix.vectors {
		hits = append(hits, Hit{Chunk: ix.chunks[i], Score: vek32.Dot(queryVec, v)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// normalize scales a vector to unit length in place. A zero vector is left
// untouched so it scores zero against everything.
func normalize(v []float32) {
	norm := float32(math.Sqrt(float64(vek32.Dot(v, v))))
	if norm == 0 {
		return
	}
	vek32.MulNumber_Inplace(v, 1/norm)
}

// isZero reports whether every component is zero. A zero query vector
// cannot rank chunks.
func isZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
