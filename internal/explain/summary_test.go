package explain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleScores() types.MatchScores {
	return types.MatchScores{
		SemanticScore: 0.82,
		ATSScore:      0.5,
		FinalScore:    0.676,
		Method:        "tfidf",
		Breakdown: types.Breakdown{
			Weights: types.Weights{Semantic: 0.55, ATS: 0.45},
		},
	}
}

func TestBuildSummary_FormatsPercentages(t *testing.T) {
	summary := BuildSummary(sampleScores(), types.GapResult{}, "8.7/10")

	assert.Equal(t, "68%", summary.Final)
	assert.Equal(t, "82% (tfidf)", summary.Semantic)
	assert.Equal(t, "50%", summary.ATS)
	assert.Equal(t, "8.7/10", summary.CGPA)
}

func TestBuildSummary_CGPAPlaceholder(t *testing.T) {
	summary := BuildSummary(sampleScores(), types.GapResult{}, "")

	assert.Equal(t, "Not detected", summary.CGPA)
}

func TestBuildSummary_JoinsSkills(t *testing.T) {
	gaps := types.GapResult{
		Matched: []string{"go", "python"},
		Missing: []string{"kubernetes"},
	}

	summary := BuildSummary(sampleScores(), gaps, "")

	assert.Equal(t, "go, python", summary.MatchedSkills)
	assert.Equal(t, "kubernetes", summary.MissingSkills)
}

func TestBuildSummary_CapsSkillListsAtTwenty(t *testing.T) {
	var many []string
	for i := 0; i < 25; i++ {
		many = append(many, fmt.Sprintf("skill%02d", i))
	}

	summary := BuildSummary(sampleScores(), types.GapResult{Matched: many}, "")

	assert.True(t, strings.HasSuffix(summary.MatchedSkills, "..."))
	assert.Equal(t, 20, strings.Count(summary.MatchedSkills, "skill"))
	assert.NotContains(t, summary.MatchedSkills, "skill20")
}

func TestBuildSummary_NoEllipsisAtExactlyTwenty(t *testing.T) {
	var exact []string
	for i := 0; i < 20; i++ {
		exact = append(exact, fmt.Sprintf("skill%02d", i))
	}

	summary := BuildSummary(sampleScores(), types.GapResult{Missing: exact}, "")

	assert.False(t, strings.HasSuffix(summary.MissingSkills, "..."))
}

func TestRecommendationText_NoMissingSkills(t *testing.T) {
	text := RecommendationText(nil)

	assert.Contains(t, text, "already covers most skills")
}

func TestRecommendationText_ListsMissingSkills(t *testing.T) {
	text := RecommendationText([]string{"kubernetes", "terraform"})

	assert.Contains(t, text, "missing skills")
	assert.Contains(t, text, "- kubernetes")
	assert.Contains(t, text, "- terraform")
}

func TestRecommendationText_CapsAtEight(t *testing.T) {
	var many []string
	for i := 0; i < 12; i++ {
		many = append(many, fmt.Sprintf("skill%02d", i))
	}

	text := RecommendationText(many)

	assert.Equal(t, 8, strings.Count(text, "- skill"))
	assert.NotContains(t, text, "skill08")
}
