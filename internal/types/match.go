package types

// Weights holds the two fusion weights used to combine the semantic and ATS
// scores. The JSON key names are part of the output contract consumed by the
// presentation layer and must not change.
type Weights struct {
	Semantic float64 `json:"semantic"`
	ATS      float64 `json:"ats"`
}

// Breakdown records the inputs that drove the weight decision, for
// auditability. It is informational only; nothing downstream computes on it.
type Breakdown struct {
	Weights         Weights  `json:"weights"`
	YearsExperience *float64 `json:"years_experience_estimate"`
	FresherMode     bool     `json:"fresher_mode"`
}

// MatchScores is the full scoring result for one resume/job-description pair.
// All scores lie in [0,1]. Method identifies which semantic strategy actually
// ran (e.g. "gemini-embedding" or "tfidf").
type MatchScores struct {
	SemanticScore float64   `json:"semantic_score"`
	ATSScore      float64   `json:"ats_score"`
	FinalScore    float64   `json:"final_score"`
	Method        string    `json:"method"`
	Breakdown     Breakdown `json:"breakdown"`
}

// GapResult holds the skill-gap sets between a resume and a job description.
// All three lists are alphabetically sorted subsets of the taxonomy.
// Matched and Missing partition the job description's extracted skills.
type GapResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// Summary is the presentation-ready view of an analysis: formatted percent
// strings, capped skill lists, and the CGPA placeholder handling. Purely
// derived from MatchScores + GapResult + the parsed CGPA.
type Summary struct {
	Final         string `json:"final"`
	Semantic      string `json:"semantic"`
	ATS           string `json:"ats"`
	MatchedSkills string `json:"matched_skills"`
	MissingSkills string `json:"missing_skills"`
	CGPA          string `json:"cgpa"`
}

// AnalysisReport bundles everything one analysis produces.
type AnalysisReport struct {
	ID             string            `json:"id,omitempty"`
	Scores         MatchScores       `json:"scores"`
	Gaps           GapResult         `json:"gaps"`
	Summary        Summary           `json:"summary"`
	Recommendation string            `json:"recommendation"`
	Sections       map[string]string `json:"sections,omitempty"`
}
