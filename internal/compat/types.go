package compat

// ExperienceEntry is one position from a parsed resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// EducationEntry is one degree or credential from a parsed resume.
type EducationEntry struct {
	Degree string `json:"degree"`
}

// ResumeProfile is the candidate side of a match: structured fields plus the
// raw extracted text for whole-document comparison.
type ResumeProfile struct {
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	RawText    string            `json:"rawText"`
}

// JobPosting is the job side of a match.
type JobPosting struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    string   `json:"requirements"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills"`
	Keywords        []string `json:"keywords"`
	ExperienceLevel string   `json:"experienceLevel"`
}

// MatchScore is the result of one compatibility match. All scores are 0-100,
// rounded to two decimals; the overall score is the weighted composite of the
// four sub-scores.
type MatchScore struct {
	OverallScore    float64  `json:"overallScore"`
	SkillScore      float64  `json:"skillScore"`
	ExperienceScore float64  `json:"experienceScore"`
	EducationScore  float64  `json:"educationScore"`
	KeywordScore    float64  `json:"keywordScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
