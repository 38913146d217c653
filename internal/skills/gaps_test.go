package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeGaps_PartitionsJDSkills(t *testing.T) {
	taxonomy := BuildTaxonomy([]string{"python", "sql", "kubernetes", "docker"})

	result := AnalyzeGaps(
		"Built pipelines with Python and Docker",
		"Need Python, SQL, and Kubernetes",
		taxonomy,
	)

	assert.Equal(t, []string{"python"}, result.Matched)
	assert.Equal(t, []string{"kubernetes", "sql"}, result.Missing)
	assert.Equal(t, []string{"docker"}, result.Extra)
}

func TestAnalyzeGaps_EmptyInputsYieldEmptySlices(t *testing.T) {
	taxonomy := BuildTaxonomy([]string{"python"})

	result := AnalyzeGaps("", "", taxonomy)

	assert.NotNil(t, result.Matched)
	assert.NotNil(t, result.Missing)
	assert.NotNil(t, result.Extra)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Empty(t, result.Extra)
}

func TestAnalyzeGaps_SortedOutput(t *testing.T) {
	taxonomy := BuildTaxonomy([]string{"go", "rust", "c++", "java"})

	result := AnalyzeGaps("", "Rust, Go, Java and C++ welcome", taxonomy)

	assert.Equal(t, []string{"c++", "go", "java", "rust"}, result.Missing)
}
