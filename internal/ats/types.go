package ats

// KeywordMatch records one job term covered by the resume, with its weighted
// importance. Produced fresh per analysis call.
type KeywordMatch struct {
	Keyword         string   `json:"keyword"`
	FrequencyResume int      `json:"frequencyResume"`
	FrequencyJob    int      `json:"frequencyJob"`
	ImportanceScore float64  `json:"importanceScore"`
	ContextMatches  []string `json:"contextMatches"`
	Category        string   `json:"category"`
}

// MissingKeywords holds job terms absent from the resume, split by severity.
// The three lists are disjoint and capped for display (10/8/5).
type MissingKeywords struct {
	Critical   []string `json:"critical"`
	Important  []string `json:"important"`
	NiceToHave []string `json:"niceToHave"`
}

// StrengthAnalysis describes what the resume already does well.
type StrengthAnalysis struct {
	StrongTechnicalSkills   []KeywordMatch `json:"strongTechnicalSkills"`
	StrongExperienceMatches []KeywordMatch `json:"strongExperienceMatches"`
	EducationAdvantages     []string       `json:"educationAdvantages"`
	QuantifiedAchievements  []string       `json:"quantifiedAchievements"`
	KeywordDensityScore     float64        `json:"keywordDensityScore"`
}

// WeaknessAnalysis describes gaps between the resume and the job posting.
type WeaknessAnalysis struct {
	MissingHardSkills        []string `json:"missingHardSkills"`
	MissingSoftSkills        []string `json:"missingSoftSkills"`
	WeakExperienceAreas      []string `json:"weakExperienceAreas"`
	MissingEducationKeywords []string `json:"missingEducationKeywords"`
	FormattingIssues         []string `json:"formattingIssues"`
	QuantificationGaps       []string `json:"quantificationGaps"`
}

// DetailedAnalysis exposes the sub-metrics behind the composite score.
type DetailedAnalysis struct {
	KeywordDensity        float64  `json:"keywordDensity"`
	IndustryAlignment     float64  `json:"industryAlignment"`
	ExperienceLevelMatch  float64  `json:"experienceLevelMatch"`
	QuantificationScore   float64  `json:"quantificationScore"`
	FormattingScore       float64  `json:"formattingScore"`
	StrengthAreas         []string `json:"strengthAreas"`
	WeaknessAreas         []string `json:"weaknessAreas"`
	TotalKeywordsFound    int      `json:"totalKeywordsFound"`
	TotalKeywordsExpected int      `json:"totalKeywordsExpected"`
	MatchRatio            float64  `json:"matchRatio"`
}

// TechnicalSkillScore pairs a matched keyword with its importance for the
// strengths summary.
type TechnicalSkillScore struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

// StrengthsSummary is the compact strengths view in the result payload.
type StrengthsSummary struct {
	TechnicalSkills        []TechnicalSkillScore `json:"technicalSkills"`
	QuantifiedAchievements []string              `json:"quantifiedAchievements"`
	KeywordDensityScore    float64               `json:"keywordDensityScore"`
}

// WeaknessesSummary is the compact weaknesses view in the result payload.
type WeaknessesSummary struct {
	MissingHardSkills []string `json:"missingHardSkills"`
	MissingSoftSkills []string `json:"missingSoftSkills"`
	WeakAreas         []string `json:"weakAreas"`
	FormattingIssues  []string `json:"formattingIssues"`
}

// AnalysisResult is the full outcome of one ATS analysis. Every field is
// always populated; degenerate input yields empty lists, never nils from the
// analyzer's own construction.
type AnalysisResult struct {
	ATSScore        float64           `json:"atsScore"`
	StrongKeywords  []string          `json:"strongKeywords"`
	MissingKeywords []string          `json:"missingKeywords"`
	Suggestions     []string          `json:"suggestions"`
	Detailed        DetailedAnalysis  `json:"detailedAnalysis"`
	Strengths       StrengthsSummary  `json:"strengthsAnalysis"`
	Weaknesses      WeaknessesSummary `json:"weaknessesAnalysis"`
}
