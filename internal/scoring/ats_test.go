package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestATSKeywordScore_FullOverlap(t *testing.T) {
	text := "golang kubernetes docker"
	assert.Equal(t, 1.0, ATSKeywordScore(text, text))
}

func TestATSKeywordScore_NoOverlap(t *testing.T) {
	score := ATSKeywordScore("painting sculpture", "golang kubernetes")
	assert.Equal(t, 0.0, score)
}

func TestATSKeywordScore_PartialOverlap(t *testing.T) {
	// JD has 4 distinct tokens, resume covers 2 of them.
	score := ATSKeywordScore(
		"golang docker experience",
		"golang docker terraform ansible")

	assert.InDelta(t, 0.5, score, 0.001)
}

func TestATSKeywordScore_EmptyJD(t *testing.T) {
	assert.Equal(t, 0.0, ATSKeywordScore("golang engineer", ""))
	assert.Equal(t, 0.0, ATSKeywordScore("golang engineer", "a b !"))
}

func TestATSKeywordScore_EmptyResume(t *testing.T) {
	assert.Equal(t, 0.0, ATSKeywordScore("", "golang kubernetes"))
}

func TestATSKeywordScore_DuplicatesDoNotInflate(t *testing.T) {
	score := ATSKeywordScore("golang golang golang", "golang docker")
	assert.InDelta(t, 0.5, score, 0.001)
}
