// Package compat scores how well a candidate's resume fits a specific job
// posting. Four independent sub-scores (fuzzy skill matching, experience
// relevance, education level, keyword similarity) combine into a weighted
// overall score with human-readable insights.
package compat

import "math"

// Sub-score weights. They sum to 1.0 so the overall score stays on the same
// 0-100 scale as its components.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.25
	educationWeight  = 0.15
	keywordsWeight   = 0.20
)

// Matcher runs the compatibility pipeline. Stateless and safe for concurrent
// use.
type Matcher struct{}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Score computes the full compatibility result for one resume against one job.
// Required and preferred skills are pooled for matching; a job with no listed
// skills scores the skill component vacuously at 100.
func (m *Matcher) Score(resume ResumeProfile, job JobPosting) MatchScore {
	jobSkills := append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...)

	skillScore, matched, missing := scoreSkills(resume.Skills, jobSkills)
	experienceScore := scoreExperience(resume.Experience, job)
	educationScore := scoreEducation(resume.Education, job)
	keywordScore := scoreKeywords(resume.RawText, job)

	overall := skillScore*skillsWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight +
		keywordScore*keywordsWeight

	strengths, weaknesses, recommendations := generateInsights(
		skillScore, experienceScore, educationScore, keywordScore, matched, missing)

	return MatchScore{
		OverallScore:    round2(overall),
		SkillScore:      round2(skillScore),
		ExperienceScore: round2(experienceScore),
		EducationScore:  round2(educationScore),
		KeywordScore:    round2(keywordScore),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
