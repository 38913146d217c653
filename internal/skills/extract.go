package skills

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// wordBoundaryRes caches compiled word-boundary regexes per skill. Single-token
// taxonomy entries are matched this way on every extraction call, so the
// compile cost is paid once per process, not per analysis.
var (
	wordBoundaryMu  sync.RWMutex
	wordBoundaryRes = make(map[string]*regexp.Regexp)
)

func wordBoundaryRe(skill string) *regexp.Regexp {
	wordBoundaryMu.RLock()
	re, ok := wordBoundaryRes[skill]
	wordBoundaryMu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	wordBoundaryMu.Lock()
	wordBoundaryRes[skill] = re
	wordBoundaryMu.Unlock()
	return re
}

// Extract returns the taxonomy entries mentioned in text, sorted
// alphabetically. Multi-token entries (containing a space, hyphen, or plus)
// are matched as raw substrings of the lowercased text, padded with spaces to
// reduce false positives at text boundaries; single-token entries are matched
// as whole words. Exact matching only: no fuzzy or partial matches, which is
// an accepted limitation of the heuristic.
func Extract(text string, taxonomy Taxonomy) []string {
	if text == "" || len(taxonomy) == 0 {
		return nil
	}

	low := " " + strings.ToLower(text) + " "

	var found []string
	for _, skill := range taxonomy {
		if strings.ContainsAny(skill, " -+") {
			if strings.Contains(low, skill) {
				found = append(found, skill)
			}
		} else if wordBoundaryRe(skill).MatchString(low) {
			found = append(found, skill)
		}
	}

	sort.Strings(found)
	return found
}
