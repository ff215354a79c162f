package compat

import (
	"fmt"
	"strings"
)

const (
	strengthThreshold       = 80.0
	weaknessThreshold       = 60.0
	recommendationThreshold = 70.0

	insightSkillsCap = 5
	recommendCap     = 3
)

// generateInsights turns the sub-scores and skill lists into plain-language
// strengths, weaknesses and recommendations. At least one recommendation is
// always returned.
func generateInsights(skillScore, experienceScore, educationScore, keywordScore float64, matched, missing []string) ([]string, []string, []string) {
	strengths := []string{}
	weaknesses := []string{}
	recommendations := []string{}

	if skillScore >= strengthThreshold {
		strengths = append(strengths, "Strong skill match with job requirements")
	}
	if experienceScore >= strengthThreshold {
		strengths = append(strengths, "Highly relevant work experience")
	}
	if educationScore >= strengthThreshold {
		strengths = append(strengths, "Educational background aligns well with job requirements")
	}
	if keywordScore >= strengthThreshold {
		strengths = append(strengths, "Resume content strongly matches job description")
	}
	if len(matched) > 0 {
		strengths = append(strengths,
			fmt.Sprintf("Key matching skills: %s", strings.Join(firstN(matched, insightSkillsCap), ", ")))
	}

	if skillScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Limited skill match with job requirements")
	}
	if experienceScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Work experience may not be highly relevant")
	}
	if educationScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Educational background could be more aligned")
	}
	if keywordScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Resume content doesn't strongly match job description")
	}
	if len(missing) > 0 {
		weaknesses = append(weaknesses,
			fmt.Sprintf("Missing key skills: %s", strings.Join(firstN(missing, insightSkillsCap), ", ")))
	}

	if len(missing) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider developing skills in: %s", strings.Join(firstN(missing, recommendCap), ", ")))
	}
	if skillScore < recommendationThreshold {
		recommendations = append(recommendations, "Highlight relevant skills more prominently in your resume")
	}
	if keywordScore < recommendationThreshold {
		recommendations = append(recommendations, "Include more job-specific keywords in your resume")
	}
	if experienceScore < recommendationThreshold {
		recommendations = append(recommendations, "Emphasize relevant work experience and achievements")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Your profile looks good! Consider customizing your resume for this specific role")
	}

	return strengths, weaknesses, recommendations
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
