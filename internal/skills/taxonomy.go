// Package skills provides the skill taxonomy, skill extraction, and skill-gap
// analysis. The taxonomy is built once at startup, never mutated afterwards,
// and is safe to share across concurrent analyses.
package skills

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textutil"
)

//go:embed skills_taxonomy.txt
var defaultTaxonomyData string

// Taxonomy is the canonical list of known skill terms: normalized, lowercased,
// deduplicated, and sorted by descending length so multi-word entries are
// considered before the substrings they contain.
type Taxonomy []string

// BuildTaxonomy normalizes raw skill strings into a Taxonomy. Blank entries
// and duplicates (after normalization) are dropped.
func BuildTaxonomy(raw []string) Taxonomy {
	seen := make(map[string]struct{}, len(raw))
	entries := make([]string, 0, len(raw))
	for _, s := range raw {
		skill := strings.ToLower(textutil.Normalize(s))
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		entries = append(entries, skill)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return len(entries[a]) > len(entries[b])
	})

	return Taxonomy(entries)
}

// LoadTaxonomyFile reads a one-skill-per-line taxonomy source and builds the
// taxonomy from it. Casing, stray whitespace, and duplicate lines in the file
// are all tolerated.
func LoadTaxonomyFile(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	return BuildTaxonomy(splitLines(string(data))), nil
}

// DefaultTaxonomy returns the taxonomy compiled into the binary. Used when no
// taxonomy file is configured.
func DefaultTaxonomy() Taxonomy {
	return BuildTaxonomy(splitLines(defaultTaxonomyData))
}

func splitLines(data string) []string {
	lines := strings.Split(data, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
