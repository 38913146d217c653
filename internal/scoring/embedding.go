package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// embeddingModelName is the fixed default embedding model identifier.
const embeddingModelName = "text-embedding-004"

// embeddingMethodTag identifies the embedding strategy in MatchScores.
const embeddingMethodTag = "gemini-embedding"

// EmbeddingStrategy scores semantic similarity with Gemini text embeddings:
// embed both texts, normalize to unit length, dot product, clamp.
type EmbeddingStrategy struct {
	client *genai.Client
}

// NewEmbeddingStrategy constructs the embedding strategy. Construction is the
// availability probe: any failure here means the caller should fall back.
func NewEmbeddingStrategy(ctx context.Context, apiKey string) (*EmbeddingStrategy, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	return &EmbeddingStrategy{client: client}, nil
}

// Score embeds both texts in one batch call and returns their cosine
// similarity (dot product of unit vectors), clamped to [0,1].
func (s *EmbeddingStrategy) Score(ctx context.Context, resumeText, jdText string) (float64, error) {
	em := s.client.EmbeddingModel(embeddingModelName)

	batch := em.NewBatch().
		AddContent(genai.Text(resumeText)).
		AddContent(genai.Text(jdText))

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to embed texts: %w", err)
	}
	if len(res.Embeddings) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(res.Embeddings))
	}

	a := normalizeVector(res.Embeddings[0].Values)
	b := normalizeVector(res.Embeddings[1].Values)

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return clamp01(dot), nil
}

// Method returns the embedding strategy tag.
func (s *EmbeddingStrategy) Method() string {
	return embeddingMethodTag
}

// Close releases the underlying client.
func (s *EmbeddingStrategy) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// normalizeVector converts the API's float32 vector to a unit-length float64
// vector. A zero vector stays zero.
func normalizeVector(values []float32) []float64 {
	out := make([]float64, len(values))
	var sumSquares float64
	for i, v := range values {
		out[i] = float64(v)
		sumSquares += out[i] * out[i]
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return out
	}
	for i := range out {
		out[i] /= norm
	}
	return out
}
