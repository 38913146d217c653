// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

// Section names produced by the resume segmenter. SectionFull is the fallback
// key used when no section header is detected in the document.
const (
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionFull           = "full"
)

// ParsedResume represents a resume after text extraction and segmentation.
// It is created once per uploaded resume and is not mutated afterwards.
type ParsedResume struct {
	RawText  string            `json:"raw_text"`
	Sections map[string]string `json:"sections"`
	// YearsExperience is the maximum years-of-experience figure found in the
	// text, or nil if no figure was detected.
	YearsExperience *float64 `json:"years_experience_estimate,omitempty"`
	// CGPA is the detected CGPA/GPA string (e.g. "8.7/10"), or empty if none.
	CGPA string `json:"cgpa,omitempty"`
}

// Section returns the text of a named section, or empty string if the
// section was not detected.
func (r *ParsedResume) Section(name string) string {
	if r == nil || r.Sections == nil {
		return ""
	}
	return r.Sections[name]
}
