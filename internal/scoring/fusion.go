package scoring

import (
	"context"
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// The two fixed weight profiles. Fresher weighting favors semantic/content
// alignment (projects and education over role-specific keyword density);
// experienced weighting shifts toward ATS keywords. There is no
// interpolation between them.
var (
	fresherWeights     = types.Weights{Semantic: 0.70, ATS: 0.30}
	experiencedWeights = types.Weights{Semantic: 0.55, ATS: 0.45}
)

// fresherYearsThreshold is the years-of-experience cutoff below which a
// candidate is weighted as a fresher even without fresher mode.
const fresherYearsThreshold = 2.0

// FresherWeighting selects the weight profile. Explicit fresher mode, or a
// detected years-of-experience figure under the threshold, selects the
// fresher profile; everything else (including unknown experience) selects
// the experienced profile.
func FresherWeighting(yearsExperience *float64, fresherMode bool) types.Weights {
	if fresherMode || (yearsExperience != nil && *yearsExperience < fresherYearsThreshold) {
		return fresherWeights
	}
	return experiencedWeights
}

// ComputeMatch runs both scorers and fuses them into the final score. The
// breakdown records the weights and the experience figure that drove the
// weight decision, for explainability.
func ComputeMatch(ctx context.Context, strategy Strategy, resumeText, jdText string, yearsExperience *float64, fresherMode bool) types.MatchScores {
	semantic, method := SemanticSimilarity(ctx, strategy, resumeText, jdText)
	ats := ATSKeywordScore(resumeText, jdText)
	weights := FresherWeighting(yearsExperience, fresherMode)

	final := clamp01(weights.Semantic*semantic + weights.ATS*ats)

	return types.MatchScores{
		SemanticScore: semantic,
		ATSScore:      ats,
		FinalScore:    final,
		Method:        method,
		Breakdown: types.Breakdown{
			Weights:         weights,
			YearsExperience: yearsExperience,
			FresherMode:     fresherMode,
		},
	}
}

// ScoreToPercent converts a [0,1] score to a rounded whole-number percentage.
// Out-of-range inputs are clamped first.
func ScoreToPercent(x float64) int {
	return int(math.Round(100 * clamp01(x)))
}
