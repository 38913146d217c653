package parsing

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
john@example.com

Education
B.Tech in Computer Science, 2021
CGPA: 8.7/10

Experience
Software Engineer at Acme, 3 years
Built services in Go and Python

Projects
Job board scraper

Skills
Go, Python, SQL, Docker`

func TestSplitSections_DetectsKnownHeaders(t *testing.T) {
	sections := SplitSections(sampleResume)

	require.Len(t, sections, 4)
	assert.Contains(t, sections[types.SectionEducation], "B.Tech")
	assert.Contains(t, sections[types.SectionExperience], "Acme")
	assert.Contains(t, sections[types.SectionProjects], "scraper")
	assert.Contains(t, sections[types.SectionSkills], "Docker")
}

func TestSplitSections_SectionRunsUntilNextHeader(t *testing.T) {
	sections := SplitSections(sampleResume)

	assert.NotContains(t, sections[types.SectionEducation], "Acme")
	assert.NotContains(t, sections[types.SectionExperience], "scraper")
}

func TestSplitSections_NoHeadersReturnsFull(t *testing.T) {
	text := "Just a paragraph about someone.\nNothing resembling a header."
	sections := SplitSections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, text, sections[types.SectionFull])
}

func TestSplitSections_DeduplicatesAdjacentHeaders(t *testing.T) {
	text := "Skills\nTechnical Skills\nGo, Python"
	sections := SplitSections(text)

	// Both lines match skills patterns but are < 2 lines apart; only the
	// first is retained so the section includes everything.
	require.Len(t, sections, 1)
	assert.Contains(t, sections[types.SectionSkills], "Go, Python")
}

func TestSplitSections_HeaderPriorityOrder(t *testing.T) {
	// "Education and Training" matches both the education and the
	// certifications tables; education is declared first and must win.
	sections := SplitSections("Education and Training\nB.Sc Physics")

	require.Contains(t, sections, types.SectionEducation)
	assert.NotContains(t, sections, types.SectionCertifications)
}

func TestSplitSections_InternshipsMapToExperience(t *testing.T) {
	sections := SplitSections("Internships\nSummer intern at a lab")

	assert.Contains(t, sections, types.SectionExperience)
}

func TestSplitSections_Idempotent(t *testing.T) {
	first := SplitSections(sampleResume)

	// Re-running segmentation on the concatenated chunks, in original
	// document order, must reproduce the same boundaries.
	order := []string{
		types.SectionEducation,
		types.SectionExperience,
		types.SectionProjects,
		types.SectionSkills,
	}
	var chunks []string
	for _, name := range order {
		chunks = append(chunks, first[name])
	}
	second := SplitSections(strings.Join(chunks, "\n"))

	assert.Equal(t, first, second)
}
