package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFStrategy_IdenticalTexts(t *testing.T) {
	s := NewTFIDFStrategy()
	text := "golang engineer building distributed systems with kubernetes"

	score, err := s.Score(context.Background(), text, text)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestTFIDFStrategy_DisjointTexts(t *testing.T) {
	s := NewTFIDFStrategy()

	score, err := s.Score(context.Background(),
		"painter sculptor watercolor gallery",
		"kubernetes terraform golang microservices")

	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestTFIDFStrategy_PartialOverlap(t *testing.T) {
	s := NewTFIDFStrategy()

	score, err := s.Score(context.Background(),
		"python developer with machine learning background",
		"python engineer for machine learning platform")

	require.NoError(t, err)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestTFIDFStrategy_EmptyTexts(t *testing.T) {
	s := NewTFIDFStrategy()

	score, err := s.Score(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	score, err = s.Score(context.Background(), "golang engineer", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestTFIDFStrategy_StopWordsOnly(t *testing.T) {
	s := NewTFIDFStrategy()

	// Texts made entirely of stop-words vectorize to nothing.
	score, err := s.Score(context.Background(), "the and of to", "with from about")

	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestTFIDFStrategy_ScoreInRange(t *testing.T) {
	s := NewTFIDFStrategy()
	pairs := [][2]string{
		{"go", "go go go"},
		{"data analysis with pandas", "data engineering with spark"},
		{"a", "b"},
	}

	for _, pair := range pairs {
		score, err := s.Score(context.Background(), pair[0], pair[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestTFIDFStrategy_MethodTag(t *testing.T) {
	assert.Equal(t, "tfidf", NewTFIDFStrategy().Method())
}

func TestBuildVocabulary_Deterministic(t *testing.T) {
	a := termCounts("go go python sql")
	b := termCounts("python rust")

	first := buildVocabulary(a, b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, buildVocabulary(a, b))
	}
	// Most frequent first: "go" (2) and "python" (2) lead, alphabetical on tie.
	assert.Equal(t, []string{"go", "python", "rust", "sql"}, first)
}

func TestCosine_ZeroMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, cosine([]float64{0, 0}, []float64{1, 2}))
	assert.Equal(t, 0.0, cosine([]float64{0, 0}, []float64{0, 0}))
}
