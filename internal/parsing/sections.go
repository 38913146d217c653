// Package parsing provides resume segmentation and attribute extraction.
// Everything here is heuristic and best-effort: a resume that defeats the
// heuristics degrades to "nothing detected" rather than failing the analysis.
package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// sectionPattern pairs a section name with one of its header regexes.
type sectionPattern struct {
	section string
	re      *regexp.Regexp
}

// sectionPatterns is the declarative header table, in priority order. When a
// single line matches patterns from more than one section, the first entry in
// this table wins. The order is inherited and covered by tests; changing it
// silently changes segmentation on ambiguous resumes.
var sectionPatterns = []sectionPattern{
	{types.SectionEducation, regexp.MustCompile(`(?i)\beducation\b`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)\bacademics?\b`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)\bqualifications?\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bexperience\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bemployment\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bwork history\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\binternships?\b`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)\bprojects?\b`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)\bacademic projects?\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\bskills?\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\btechnical skills?\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\bcore competencies\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\bcertifications?\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\bcourses?\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\btraining\b`)},
}

// minHeaderGap is the minimum number of lines between two retained headers.
// Hits closer than this are treated as a repeated/near-duplicate header and
// only the first is kept.
const minHeaderGap = 2

// headerHit records a header match at a line index.
type headerHit struct {
	line    int
	section string
}

// SplitSections splits normalized resume text into labeled sections using
// header-pattern detection. Each retained header starts a section whose text
// runs until the next retained header (or end of document). If no header is
// found at all, the whole text is returned under the "full" key.
func SplitSections(text string) map[string]string {
	lines := strings.Split(text, "\n")

	var hits []headerHit
	for i, line := range lines {
		low := strings.ToLower(strings.TrimSpace(line))
		for _, sp := range sectionPatterns {
			if sp.re.MatchString(low) {
				hits = append(hits, headerHit{line: i, section: sp.section})
				break
			}
		}
	}

	if len(hits) == 0 {
		return map[string]string{types.SectionFull: text}
	}

	sort.SliceStable(hits, func(a, b int) bool { return hits[a].line < hits[b].line })

	// Drop hits closer than minHeaderGap lines to the previous retained hit.
	cleaned := hits[:0:0]
	lastLine := -minHeaderGap
	for _, h := range hits {
		if h.line-lastLine >= minHeaderGap {
			cleaned = append(cleaned, h)
			lastLine = h.line
		}
	}

	sections := make(map[string]string, len(cleaned))
	for j, h := range cleaned {
		end := len(lines)
		if j+1 < len(cleaned) {
			end = cleaned[j+1].line
		}
		chunk := strings.TrimSpace(strings.Join(lines[h.line:end], "\n"))
		sections[h.section] = chunk
	}

	return sections
}
