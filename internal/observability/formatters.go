// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
	// notDetected is rendered for attributes the parser could not find
	notDetected = "Not detected"
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the fused match scores with the weighting that
// produced them.
func (p *Printer) PrintScores(scores types.MatchScores) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final match:     %s\n", percent(scores.FinalScore)))
	sb.WriteString(fmt.Sprintf("Semantic:        %s (%s)\n", percent(scores.SemanticScore), scores.Method))
	sb.WriteString(fmt.Sprintf("ATS keywords:    %s\n", percent(scores.ATSScore)))
	sb.WriteString("\n")

	mode := "experienced"
	if scores.Breakdown.FresherMode {
		mode = "fresher"
	}
	sb.WriteString(fmt.Sprintf("Weighting:       %s (%.2f semantic / %.2f ATS)\n",
		mode, scores.Breakdown.Weights.Semantic, scores.Breakdown.Weights.ATS))

	years := notDetected
	if scores.Breakdown.YearsExperience != nil {
		years = fmt.Sprintf("%.1f years", *scores.Breakdown.YearsExperience)
	}
	sb.WriteString(fmt.Sprintf("Experience:      %s", years))

	p.printBox("MATCH SCORES", sb.String())
}

// PrintGaps outputs the skill gap analysis: matched, missing, and extra
// skills relative to the job description.
func (p *Printer) PrintGaps(gaps types.GapResult) {
	var sb strings.Builder

	writeSkillList(&sb, "Matched", gaps.Matched)
	sb.WriteString("\n")
	writeSkillList(&sb, "Missing", gaps.Missing)
	sb.WriteString("\n")
	writeSkillList(&sb, "Extra", gaps.Extra)

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(skills)))
	if len(skills) == 0 {
		sb.WriteString("  (none)\n")
		return
	}

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}

// PrintProfile outputs the attributes detected while parsing the resume.
func (p *Printer) PrintProfile(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	years := notDetected
	if resume.YearsExperience != nil {
		years = fmt.Sprintf("%.1f years", *resume.YearsExperience)
	}
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", years))

	cgpa := resume.CGPA
	if cgpa == "" {
		cgpa = notDetected
	}
	sb.WriteString(fmt.Sprintf("CGPA:        %s\n", cgpa))
	sb.WriteString("\n")

	sb.WriteString("Sections detected:\n")
	for _, name := range []string{
		types.SectionEducation, types.SectionExperience, types.SectionProjects,
		types.SectionSkills, types.SectionCertifications,
	} {
		if _, ok := resume.Sections[name]; ok {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}
	if _, ok := resume.Sections[types.SectionFull]; ok {
		sb.WriteString("  (no headers found, treated as one section)\n")
	}

	p.printBox("RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs the advice text under its own box.
func (p *Printer) PrintRecommendation(recommendation string) {
	if recommendation == "" {
		return
	}
	p.printBox("RECOMMENDATION", strings.TrimSpace(recommendation))
}

// PrintReport outputs the full analysis report.
func (p *Printer) PrintReport(report *types.AnalysisReport, resume *types.ParsedResume) {
	if report == nil {
		return
	}
	p.PrintProfile(resume)
	p.PrintScores(report.Scores)
	p.PrintGaps(report.Gaps)
	p.PrintRecommendation(report.Recommendation)
}

func percent(score float64) string {
	return fmt.Sprintf("%d%%", scoring.ScoreToPercent(score))
}
