package compat

import "strings"

// neutralEducationScore applies when the resume carries no education info at
// all: neither reward nor penalty.
const neutralEducationScore = 50.0

const fieldRelevanceBonus = 20.0

var degreeSignalTerms = []string{"bachelor", "master", "phd", "degree", "diploma", "certificate"}

// Degree tiers, highest first. Matching is on whole words of the degree string
// so "diploma" never hits the master tier via the "ma" abbreviation.
var degreeTiers = []struct {
	score float64
	terms []string
}{
	{100, []string{"phd", "doctorate"}},
	{90, []string{"master", "mba", "ms", "ma", "msc"}},
	{80, []string{"bachelor", "bs", "ba", "bsc"}},
	{60, []string{"associate", "diploma"}},
}

const unknownDegreeScore = 40.0

var (
	techFields     = []string{"computer", "software", "information", "engineering", "technology", "science"}
	businessFields = []string{"business", "management", "administration", "finance", "economics"}
	designFields   = []string{"design", "art", "creative", "visual", "graphic"}

	techJobSignals     = []string{"software", "developer", "engineer", "technology", "programming"}
	businessJobSignals = []string{"manager", "business", "sales", "marketing", "finance"}
	designJobSignals   = []string{"design", "creative", "visual", "ui", "ux"}
)

// scoreEducation rates the resume's best credential against the job. A job
// that never mentions a degree requirement scores the component at 100 for
// any educated candidate.
func scoreEducation(entries []EducationEntry, job JobPosting) float64 {
	if len(entries) == 0 {
		return neutralEducationScore
	}

	jobText := strings.ToLower(job.Requirements + " " + job.Description)
	if !containsAnySubstring(jobText, degreeSignalTerms) {
		return 100.0
	}

	best := 0.0
	for _, e := range entries {
		degree := strings.ToLower(e.Degree)
		score := degreeTierScore(degree)
		if relevantField(degree, jobText) {
			score += fieldRelevanceBonus
		}
		if score > best {
			best = score
		}
	}
	if best > 100 {
		best = 100
	}
	return best
}

func degreeTierScore(degree string) float64 {
	words := wordSet(degree)
	for _, tier := range degreeTiers {
		for _, term := range tier.terms {
			if words[term] {
				return tier.score
			}
		}
	}
	return unknownDegreeScore
}

// relevantField checks whether the degree's field of study lines up with the
// kind of role the job text describes. Job signals match on whole words only;
// short ones like "ui" would otherwise fire inside unrelated words.
func relevantField(degree, jobText string) bool {
	jobWords := wordSet(jobText)
	switch {
	case containsAnyWord(jobWords, techJobSignals):
		return containsAnySubstring(degree, techFields)
	case containsAnyWord(jobWords, businessJobSignals):
		return containsAnySubstring(degree, businessFields)
	case containsAnyWord(jobWords, designJobSignals):
		return containsAnySubstring(degree, designFields)
	}
	return false
}

func containsAnyWord(words map[string]bool, terms []string) bool {
	for _, term := range terms {
		if words[term] {
			return true
		}
	}
	return false
}

func containsAnySubstring(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		set[w] = true
	}
	return set
}
