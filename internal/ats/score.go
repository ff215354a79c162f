package ats

import (
	"regexp"
	"strings"
)

// Score component weights and penalties.
const (
	keywordWeight    = 40.0
	industryWeight   = 25.0
	experienceWeight = 20.0
	impactWeight     = 10.0
	formatWeight     = 5.0

	criticalMissingPenalty  = 3.0
	importantMissingPenalty = 1.5

	topMatchesForScore = 20
)

var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%\s*(?:improvement|increase|decrease|reduction|growth|faster|better)`),
	regexp.MustCompile(`\$\d+(?:,\d+)*(?:k|m|million|billion)?`),
	regexp.MustCompile(`\d+(?:,\d+)*\s*(?:users|customers|clients|projects|applications|systems)`),
	regexp.MustCompile(`\d+(?:\.\d+)?x\s*(?:improvement|increase|faster|more)`),
	regexp.MustCompile(`saved\s*\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`generated\s*\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`managed\s*\$?\d+(?:,\d+)*\s*budget`),
	regexp.MustCompile(`team\s*of\s*\d+`),
	regexp.MustCompile(`\d+\s*(?:award|certification|patent)`),
	regexp.MustCompile(`ranked\s*#?\d+`),
}

var sectionHeaders = []string{"experience", "education", "skills", "projects"}

// CalculateScore combines keyword-match strength, industry and experience
// alignment, quantification and formatting into the 0-100 ATS score, penalized
// per missing critical/important keyword.
func (a *Analyzer) CalculateScore(matches []KeywordMatch, missing MissingKeywords, resumeText, jobText, industry, level string) float64 {
	keywordScore := 0.0
	if len(matches) > 0 {
		top := matches
		if len(top) > topMatchesForScore {
			top = top[:topMatchesForScore]
		}
		sum := 0.0
		for _, m := range top {
			sum += m.ImportanceScore
		}
		keywordScore = sum / topMatchesForScore * keywordWeight
	}

	industryScore := a.industryAlignment(resumeText, industry) * industryWeight
	experienceScore := a.experienceAlignment(resumeText, level) * experienceWeight
	impactScore := a.impactScore(resumeText) * impactWeight
	formatScore := formattingQuality(resumeText) * formatWeight

	total := keywordScore + industryScore + experienceScore + impactScore + formatScore
	total -= float64(len(missing.Critical)) * criticalMissingPenalty
	total -= float64(len(missing.Important)) * importantMissingPenalty

	return clampScore(total)
}

// impactScore blends quantified-achievement count and impact-verb count into
// [0,1].
func (a *Analyzer) impactScore(resumeText string) float64 {
	quantified := len(extractAchievements(resumeText))
	verbs := 0
	for _, verb := range impactVerbs {
		if strings.Contains(resumeText, verb) {
			verbs++
		}
	}
	return capUnit((float64(quantified)*0.7 + float64(verbs)*0.3) / 10)
}

// formattingQuality starts at 1.0, penalizes too-short or too-long resumes and
// scales by section-header coverage. Result is clamped to [0,1].
func formattingQuality(resumeText string) float64 {
	score := 1.0
	wordCount := len(strings.Fields(resumeText))
	if wordCount < 100 {
		score -= 0.3
	} else if wordCount > 2000 {
		score -= 0.2
	}

	lower := strings.ToLower(resumeText)
	found := 0
	for _, section := range sectionHeaders {
		if strings.Contains(lower, section) {
			found++
		}
	}
	return capUnit(float64(found) / float64(len(sectionHeaders)) * score)
}

// extractAchievements pulls quantified achievement phrases from resume text,
// deduplicated in first-match order.
func extractAchievements(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, re := range achievementPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

// keywordDensity is the Jaccard-style overlap of the job's word set covered by
// the resume's word set, in [0,1].
func keywordDensity(resumeText, jobText string) float64 {
	jobWords := wordSet(jobText)
	if len(jobWords) == 0 {
		return 0
	}
	resumeWords := wordSet(resumeText)
	common := 0
	for w := range jobWords {
		if resumeWords[w] {
			common++
		}
	}
	return float64(common) / float64(len(jobWords))
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
