package scoring

import (
	"github.com/jonathan/resume-matcher/internal/textutil"
)

// ATSKeywordScore approximates what an Applicant Tracking System keyword
// filter would measure: the fraction of the job description's distinct tokens
// that also appear in the resume. Returns 0 when the job description
// tokenizes to nothing.
func ATSKeywordScore(resumeText, jdText string) float64 {
	resumeTokens := textutil.TokenSet(resumeText)
	jdTokens := textutil.TokenSet(jdText)
	if len(jdTokens) == 0 {
		return 0
	}

	overlap := 0
	for tok := range jdTokens {
		if _, ok := resumeTokens[tok]; ok {
			overlap++
		}
	}

	return clamp01(float64(overlap) / float64(len(jdTokens)))
}
