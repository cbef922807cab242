package models

// ResumeAnalysis is the structured result of analyzing a resume.
// Skills may be empty; the model does not guarantee it found any.
type ResumeAnalysis struct {
	Skills     []string         `json:"skills"`
	Experience []map[string]any `json:"experience"`
	Education  []map[string]any `json:"education"`
	Summary    string           `json:"summary"`
}

// JobAnalysis is the structured result of analyzing a job description.
// The model sometimes returns a bare string where a list is expected, so
// every field uses StringOrList and downstream code only ever sees slices.
type JobAnalysis struct {
	RequiredSkills   StringOrList `json:"required_skills"`
	PreferredSkills  StringOrList `json:"preferred_skills"`
	Responsibilities StringOrList `json:"responsibilities"`
	CompanyValues    StringOrList `json:"company_values"`
	Keywords         StringOrList `json:"keywords"`
}

// JobMatch describes how well a resume matches a job description.
// MatchScore is validated to [0,100] at parse time.
type JobMatch struct {
	MatchScore          int      `json:"match_score"`
	MatchingSkills      []string `json:"matching_skills"`
	MissingSkills       []string `json:"missing_skills"`
	ExperienceAlignment string   `json:"experience_alignment"`
	Recommendations     []string `json:"recommendations"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
}

// ResumeCustomization holds suggestions for tailoring a resume to a job.
type ResumeCustomization struct {
	HighlightedSkills   []string            `json:"highlighted_skills"`
	ExperienceEmphasize map[string][]string `json:"experience_emphasize"`
	SuggestedAdditions  StringOrList        `json:"suggested_additions"`
	SuggestedRemovals   StringOrList        `json:"suggested_removals"`
}
