// Package scoring computes the semantic, ATS, and fused match scores for one
// resume/job-description pair. The semantic score comes from a Strategy
// resolved once per process: an embedding model when one is reachable, a
// TF-IDF fallback otherwise. All scores are clamped to [0,1].
package scoring

import (
	"context"
	"log"
)

// Strategy computes a semantic similarity score in [0,1] between two texts.
// Implementations must be safe for concurrent use.
type Strategy interface {
	Score(ctx context.Context, resumeText, jdText string) (float64, error)
	// Method returns the tag recorded in MatchScores identifying which
	// strategy actually executed.
	Method() string
}

// Resolve probes for embedding-model availability once and returns the
// strategy to inject into the scorer. The probe is a runtime capability
// check, not a configuration flag: no API key, or a client that fails to
// construct, silently selects the TF-IDF fallback. Resolve never returns an
// error; an analysis must always be able to proceed.
func Resolve(ctx context.Context, apiKey string, verbose bool) Strategy {
	if apiKey == "" {
		if verbose {
			log.Printf("[VERBOSE] No embedding API key configured, using TF-IDF similarity")
		}
		return NewTFIDFStrategy()
	}

	embedding, err := NewEmbeddingStrategy(ctx, apiKey)
	if err != nil {
		if verbose {
			log.Printf("[VERBOSE] Embedding model unavailable (%v), using TF-IDF similarity", err)
		}
		return NewTFIDFStrategy()
	}

	if verbose {
		log.Printf("[VERBOSE] Using embedding model %s for semantic similarity", embeddingModelName)
	}
	return embedding
}

// SemanticSimilarity scores two texts with the given strategy. If an
// embedding strategy fails at score time (network error, quota, revoked key),
// the analysis degrades to the TF-IDF fallback instead of failing; the
// returned method tag always reflects the strategy that actually produced
// the score.
func SemanticSimilarity(ctx context.Context, strategy Strategy, resumeText, jdText string) (float64, string) {
	score, err := strategy.Score(ctx, resumeText, jdText)
	if err == nil {
		return score, strategy.Method()
	}

	log.Printf("semantic similarity via %s failed (%v), falling back to TF-IDF", strategy.Method(), err)
	fallback := NewTFIDFStrategy()
	score, _ = fallback.Score(ctx, resumeText, jdText)
	return score, fallback.Method()
}

// clamp01 clamps x to [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
