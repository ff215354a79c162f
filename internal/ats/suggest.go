package ats

import (
	"fmt"
	"strings"
)

const maxSuggestions = 8

const lowDensityThreshold = 0.6

var softwareCoreSkills = []string{"python", "javascript", "react", "node.js"}

// GenerateSuggestions builds an ordered, prioritized action list from the
// score and the gap analysis. At most eight suggestions are returned; the
// score-tier message always comes first.
func (a *Analyzer) GenerateSuggestions(score float64, missing MissingKeywords, weaknesses WeaknessAnalysis, detailed DetailedAnalysis, industry string) []string {
	suggestions := []string{scoreTierMessage(score, industry)}

	if len(missing.Critical) > 0 {
		top := capList(missing.Critical, 3)
		suggestions = append(suggestions,
			fmt.Sprintf("IMMEDIATE ACTION: Add these critical skills: %s", strings.Join(top, ", ")))
		examples := capList(missing.Critical, 2)
		suggestions = append(suggestions,
			fmt.Sprintf("Create specific project examples or training certificates for: %s", strings.Join(examples, ", ")))
	}

	if len(weaknesses.QuantificationGaps) > 3 {
		suggestions = append(suggestions,
			"Add specific numbers and percentages to your achievements",
			"Example: 'Improved system performance by 40%' instead of 'Improved system performance'")
	}

	if industry == "software" && containsAny(missing.Critical, softwareCoreSkills) {
		suggestions = append(suggestions,
			"For software roles, showcase hands-on projects with the core technologies the posting names")
	}

	suggestions = append(suggestions, capList(weaknesses.FormattingIssues, 2)...)

	if detailed.KeywordDensity < lowDensityThreshold {
		suggestions = append(suggestions,
			"Increase keyword density by naturally incorporating job-specific terms")
	}

	if len(weaknesses.MissingSoftSkills) > 0 {
		top := capList(weaknesses.MissingSoftSkills, 3)
		suggestions = append(suggestions,
			fmt.Sprintf("Develop and showcase these soft skills: %s", strings.Join(top, ", ")))
	}

	return capList(suggestions, maxSuggestions)
}

func scoreTierMessage(score float64, industry string) string {
	switch {
	case score < 30:
		return fmt.Sprintf("CRITICAL: Your resume needs significant restructuring for %s roles", industry)
	case score < 50:
		return "Your resume requires substantial keyword optimization to pass ATS screening"
	case score < 70:
		return "Good foundation, but targeted improvements will boost your ATS score"
	case score < 85:
		return "Strong profile with room for strategic enhancements"
	default:
		return "Excellent alignment with the role requirements"
	}
}

func containsAny(haystack, needles []string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}
