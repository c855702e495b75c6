// Package llm wraps the Gemini API for text generation and embeddings.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Model names for the three roles the service uses Gemini in.
const (
	ModelScholar   = "gemini-2.5-pro"
	ModelRouter    = "gemini-2.5-flash-lite"
	ModelEmbedding = "text-embedding-004"
)

// Embedding task types.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

const embedBatchSize = 100

// GenerateOptions tune a single generation call.
type GenerateOptions struct {
	Model           string
	System          string
	Temperature     float32
	MaxOutputTokens int32
}

// Client is a thin wrapper over the Gemini SDK. A zero-key client is valid
// and fails every call with ErrNotConfigured.
type Client struct {
	inner *genai.Client
}

// NewClient creates a Gemini client. An empty apiKey does not error; the
// returned client reports ErrNotConfigured on use so the service can run in
// a degraded mode.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}
	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Client{inner: inner}, nil
}

// Configured reports whether the client can make API calls.
func (c *Client) Configured() bool { return c.inner != nil }

// Generate produces a single text completion.
func (c *Client) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if c.inner == nil {
		return "", ErrNotConfigured
	}
	model := opts.Model
	if model == "" {
		model = ModelScholar
	}

	cfg := &genai.GenerateContentConfig{}
	if opts.Temperature != 0 {
		cfg.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.MaxOutputTokens != 0 {
		cfg.MaxOutputTokens = opts.MaxOutputTokens
	}
	if opts.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: opts.System}}}
	}

	resp, err := c.inner.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", wrapAPIError("generate", err)
	}
	return resp.Text(), nil
}

// EmbedTexts embeds texts in API-sized batches, preserving input order.
func (c *Client) EmbedTexts(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	if c.inner == nil {
		return nil, ErrNotConfigured
	}
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += embedBatchSize {
		end := min(start+embedBatchSize, len(texts))
		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, genai.Text(text)...)
		}

		resp, err := c.inner.Models.EmbedContent(ctx, ModelEmbedding, contents, &genai.EmbedContentConfig{
			TaskType: taskType,
		})
		if err != nil {
			return nil, wrapAPIError("embed", err)
		}
		for _, emb := range resp.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embed: got %d vectors for %d texts", len(vectors), len(texts))
	}
	return vectors, nil
}

// wrapAPIError maps quota errors to ErrRateLimited and annotates the rest.
func wrapAPIError(op string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%s: %w", op, ErrRateLimited)
	}
	return fmt.Errorf("%s: %w", op, err)
}
