package scoring

import (
	"context"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestFresherWeighting_ExplicitFresherMode(t *testing.T) {
	// Fresher mode wins regardless of years.
	w := FresherWeighting(floatPtr(10), true)
	assert.Equal(t, types.Weights{Semantic: 0.70, ATS: 0.30}, w)

	w = FresherWeighting(nil, true)
	assert.Equal(t, types.Weights{Semantic: 0.70, ATS: 0.30}, w)
}

func TestFresherWeighting_LowExperience(t *testing.T) {
	w := FresherWeighting(floatPtr(1.5), false)
	assert.Equal(t, types.Weights{Semantic: 0.70, ATS: 0.30}, w)
}

func TestFresherWeighting_Experienced(t *testing.T) {
	w := FresherWeighting(floatPtr(5), false)
	assert.Equal(t, types.Weights{Semantic: 0.55, ATS: 0.45}, w)
}

func TestFresherWeighting_UnknownExperience(t *testing.T) {
	w := FresherWeighting(nil, false)
	assert.Equal(t, types.Weights{Semantic: 0.55, ATS: 0.45}, w)
}

func TestFresherWeighting_ThresholdBoundary(t *testing.T) {
	// Exactly 2.0 years is not a fresher.
	w := FresherWeighting(floatPtr(2.0), false)
	assert.Equal(t, types.Weights{Semantic: 0.55, ATS: 0.45}, w)
}

func TestComputeMatch_ScoresInRangeAndBreakdown(t *testing.T) {
	years := floatPtr(5)
	scores := ComputeMatch(context.Background(), NewTFIDFStrategy(),
		"python developer with machine learning experience",
		"hiring python engineer for machine learning work",
		years, false)

	assert.GreaterOrEqual(t, scores.SemanticScore, 0.0)
	assert.LessOrEqual(t, scores.SemanticScore, 1.0)
	assert.GreaterOrEqual(t, scores.ATSScore, 0.0)
	assert.LessOrEqual(t, scores.ATSScore, 1.0)
	assert.GreaterOrEqual(t, scores.FinalScore, 0.0)
	assert.LessOrEqual(t, scores.FinalScore, 1.0)

	assert.Equal(t, "tfidf", scores.Method)
	assert.Equal(t, types.Weights{Semantic: 0.55, ATS: 0.45}, scores.Breakdown.Weights)
	require.NotNil(t, scores.Breakdown.YearsExperience)
	assert.Equal(t, 5.0, *scores.Breakdown.YearsExperience)
	assert.False(t, scores.Breakdown.FresherMode)
}

func TestComputeMatch_FusionArithmetic(t *testing.T) {
	scores := ComputeMatch(context.Background(), NewTFIDFStrategy(),
		"golang kubernetes", "golang kubernetes", nil, true)

	expected := 0.70*scores.SemanticScore + 0.30*scores.ATSScore
	assert.InDelta(t, expected, scores.FinalScore, 0.001)
}

func TestScoreToPercent(t *testing.T) {
	assert.Equal(t, 0, ScoreToPercent(0.0))
	assert.Equal(t, 100, ScoreToPercent(1.0))
	assert.Equal(t, 50, ScoreToPercent(0.5))
	assert.Equal(t, 87, ScoreToPercent(0.874))
	assert.Equal(t, 88, ScoreToPercent(0.875))
}

func TestScoreToPercent_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 0, ScoreToPercent(-0.3))
	assert.Equal(t, 100, ScoreToPercent(1.7))
}
