package skills

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeGaps extracts skill sets independently from the resume and the job
// description against the same taxonomy and set-differences them. Matched and
// missing always partition the job description's skills; extra holds resume
// skills the job description never asked for.
func AnalyzeGaps(resumeText, jdText string, taxonomy Taxonomy) types.GapResult {
	resumeSkills := toSet(Extract(resumeText, taxonomy))
	jdSkills := toSet(Extract(jdText, taxonomy))

	result := types.GapResult{
		Matched: []string{},
		Missing: []string{},
		Extra:   []string{},
	}

	for skill := range jdSkills {
		if _, ok := resumeSkills[skill]; ok {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}
	for skill := range resumeSkills {
		if _, ok := jdSkills[skill]; !ok {
			result.Extra = append(result.Extra, skill)
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)
	sort.Strings(result.Extra)
	return result
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}
