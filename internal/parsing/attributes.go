package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years|yrs)\b`)
	cgpaRe  = regexp.MustCompile(`(?i)\b(CGPA|GPA)\b\s*[:\-]?\s*([0-9]\.?[0-9]{0,2})(\s*/\s*([0-9]{1,2}\.?[0-9]{0,2}))?`)
)

// EstimateYearsExperience scans text for figures like "3 years" or "2.5 yrs"
// and returns the maximum found. The second return value is false when no
// figure was detected. Malformed numeric text counts as not detected rather
// than an error.
func EstimateYearsExperience(text string) (float64, bool) {
	matches := yearsRe.FindAllStringSubmatch(strings.ToLower(text), -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := 0.0
	found := false
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// ExtractCGPA finds the first CGPA/GPA mention, e.g. "CGPA: 8.7/10" or
// "GPA 3.8". It returns "value/denominator" when a denominator was captured,
// the bare value otherwise, and false when nothing matched. Only the first
// occurrence matters.
func ExtractCGPA(text string) (string, bool) {
	m := cgpaRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	value := m[2]
	denom := strings.TrimSpace(m[4])
	if denom != "" {
		return value + "/" + denom, true
	}
	return value, true
}
