package parsing

import (
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseResume extracts text from a resume file and parses it. File-format
// errors (unsupported extension, unreadable file) are surfaced; everything
// past extraction is best-effort and cannot fail.
func ParseResume(path string) (*types.ParsedResume, error) {
	text, err := extract.FromFile(path)
	if err != nil {
		return nil, err
	}
	return ParseResumeText(text), nil
}

// ParseResumeBytes parses an in-memory resume file (HTTP upload path).
func ParseResumeBytes(name string, data []byte) (*types.ParsedResume, error) {
	text, err := extract.FromBytes(name, data)
	if err != nil {
		return nil, err
	}
	return ParseResumeText(text), nil
}

// ParseResumeText normalizes already-extracted resume text, segments it, and
// runs the attribute extractors. Empty or near-empty text yields a resume
// with no detected attributes rather than an error.
func ParseResumeText(text string) *types.ParsedResume {
	normalized := textutil.Normalize(text)

	parsed := &types.ParsedResume{
		RawText:  normalized,
		Sections: SplitSections(normalized),
	}

	if years, ok := EstimateYearsExperience(normalized); ok {
		parsed.YearsExperience = &years
	}
	if cgpa, ok := ExtractCGPA(normalized); ok {
		parsed.CGPA = cgpa
	}

	return parsed
}
