// Package explain formats analysis results into presentation-ready summaries
// and human-readable recommendations.
package explain

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// maxSummarySkills caps the comma-joined skill lists in the summary.
	maxSummarySkills = 20

	// maxRecommendedSkills caps the bulleted list in the recommendation.
	maxRecommendedSkills = 8

	// cgpaPlaceholder is rendered when no CGPA was detected.
	cgpaPlaceholder = "Not detected"
)

// BuildSummary derives the presentation summary from the scores, the gap
// analysis, and the detected CGPA. Scores render as whole-number percentages;
// the semantic percentage is annotated with the method tag so a reader can
// tell which strategy produced it.
func BuildSummary(scores types.MatchScores, gaps types.GapResult, cgpa string) types.Summary {
	if cgpa == "" {
		cgpa = cgpaPlaceholder
	}

	return types.Summary{
		Final:         fmt.Sprintf("%d%%", scoring.ScoreToPercent(scores.FinalScore)),
		Semantic:      fmt.Sprintf("%d%% (%s)", scoring.ScoreToPercent(scores.SemanticScore), scores.Method),
		ATS:           fmt.Sprintf("%d%%", scoring.ScoreToPercent(scores.ATSScore)),
		MatchedSkills: joinCapped(gaps.Matched, maxSummarySkills),
		MissingSkills: joinCapped(gaps.Missing, maxSummarySkills),
		CGPA:          cgpa,
	}
}

// joinCapped comma-joins at most limit entries, appending an ellipsis marker
// when the list was truncated.
func joinCapped(skills []string, limit int) string {
	if len(skills) <= limit {
		return strings.Join(skills, ", ")
	}
	return strings.Join(skills[:limit], ", ") + "..."
}

// RecommendationText builds the advice shown under the scores. With no
// missing skills it is a fixed encouragement; otherwise it lists the top
// missing skills as concrete things to add evidence for.
func RecommendationText(missingSkills []string) string {
	if len(missingSkills) == 0 {
		return "Your resume already covers most skills from the job description. Focus on impact metrics and role-specific keywords."
	}

	top := missingSkills
	if len(top) > maxRecommendedSkills {
		top = top[:maxRecommendedSkills]
	}

	var sb strings.Builder
	sb.WriteString("Consider adding or strengthening evidence for these missing skills (projects, coursework, internships):\n")
	for _, skill := range top {
		sb.WriteString("- ")
		sb.WriteString(skill)
		sb.WriteString("\n")
	}
	sb.WriteString("\nIn a future release we can link to curated learning resources per skill.")
	return sb.String()
}
