package scoring

import (
	"context"
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/textutil"
)

// tfidfMethodTag identifies the fallback strategy in MatchScores.
const tfidfMethodTag = "tfidf"

// maxVocabulary caps the joint vocabulary at the most frequent terms.
const maxVocabulary = 5000

// TFIDFStrategy is the classic vector-space fallback: joint term-frequency /
// inverse-document-frequency vectors over the two texts with English
// stop-words removed, scored by cosine similarity. It needs no external
// resources and cannot fail.
type TFIDFStrategy struct{}

// NewTFIDFStrategy returns the fallback strategy.
func NewTFIDFStrategy() *TFIDFStrategy {
	return &TFIDFStrategy{}
}

// Score computes the TF-IDF cosine similarity of the two texts, clamped to
// [0,1]. Either text vectorizing to zero magnitude yields 0.
func (s *TFIDFStrategy) Score(_ context.Context, resumeText, jdText string) (float64, error) {
	resumeCounts := termCounts(resumeText)
	jdCounts := termCounts(jdText)

	vocab := buildVocabulary(resumeCounts, jdCounts)
	if len(vocab) == 0 {
		return 0, nil
	}

	resumeVec := make([]float64, len(vocab))
	jdVec := make([]float64, len(vocab))
	for i, term := range vocab {
		idf := inverseDocFrequency(term, resumeCounts, jdCounts)
		resumeVec[i] = float64(resumeCounts[term]) * idf
		jdVec[i] = float64(jdCounts[term]) * idf
	}

	return clamp01(cosine(resumeVec, jdVec)), nil
}

// Method returns the fallback strategy tag.
func (s *TFIDFStrategy) Method() string {
	return tfidfMethodTag
}

// termCounts tokenizes text and counts terms, dropping stop-words.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range textutil.Tokenize(text) {
		if stopWords[tok] {
			continue
		}
		counts[tok]++
	}
	return counts
}

// buildVocabulary merges the two documents' terms, keeping at most
// maxVocabulary of the most frequent ones (ties broken alphabetically so the
// vocabulary is deterministic).
func buildVocabulary(a, b map[string]int) []string {
	total := make(map[string]int, len(a)+len(b))
	for term, n := range a {
		total[term] += n
	}
	for term, n := range b {
		total[term] += n
	}

	vocab := make([]string, 0, len(total))
	for term := range total {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if len(vocab) > maxVocabulary {
		vocab = vocab[:maxVocabulary]
	}
	return vocab
}

// inverseDocFrequency uses the smoothed formulation ln((1+n)/(1+df)) + 1 over
// the two-document corpus, so terms appearing in both documents still carry
// weight.
func inverseDocFrequency(term string, a, b map[string]int) float64 {
	df := 0
	if a[term] > 0 {
		df++
	}
	if b[term] > 0 {
		df++
	}
	return math.Log(float64(1+2)/float64(1+df)) + 1
}

// cosine returns the cosine similarity of two equal-length vectors, 0 when
// either has zero magnitude.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
