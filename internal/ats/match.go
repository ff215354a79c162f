package ats

import (
	"sort"
	"strings"
)

// similarityThreshold is the per-term acceptance cutoff for the ATS pipeline.
// It is tuned for the coarse character-set similarity below and is not
// interchangeable with the matcher pipeline's edit-distance threshold.
const similarityThreshold = 0.8

// termSimilarity is the ATS pipeline's cheap term-level filter: exact match
// 1.0, substring containment either direction 0.9, otherwise Jaccard
// similarity over the two terms' character sets.
func termSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return 0.9
	}

	setA := charSet(a)
	setB := charSet(b)
	union := make(map[rune]bool, len(setA)+len(setB))
	common := 0
	for r := range setA {
		union[r] = true
		if setB[r] {
			common++
		}
	}
	for r := range setB {
		union[r] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(common) / float64(len(union))
}

func charSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// keywordImportance returns the weighted importance of a term within its
// category, boosted for a fixed set of critical terms.
func (a *Analyzer) keywordImportance(keyword, category string) float64 {
	weight := a.cfg.categoryWeight(category)
	if criticalBoostTerms[keyword] {
		weight += 0.2
		if weight > 1.0 {
			weight = 1.0
		}
	}
	return weight
}

// MatchKeywords cross-matches resume vs job keyword sets per category. Every
// job term is compared against every resume term of the same category; pairs
// at or above the similarity threshold become a KeywordMatch with
// importance = category weight x similarity. Results are sorted descending by
// importance. Category sizes are bounded (<=40 terms), so the quadratic
// cross-product stays cheap.
func (a *Analyzer) MatchKeywords(resumeKeywords, jobKeywords map[string][]string) []KeywordMatch {
	var matches []KeywordMatch
	for _, category := range a.cfg.matchOrder() {
		jobTerms := jobKeywords[category]
		resumeTerms := resumeKeywords[category]
		if len(jobTerms) == 0 || len(resumeTerms) == 0 {
			continue
		}
		for _, jobTerm := range jobTerms {
			for _, resumeTerm := range resumeTerms {
				sim := termSimilarity(jobTerm, resumeTerm)
				if sim < similarityThreshold {
					continue
				}
				matches = append(matches, KeywordMatch{
					Keyword:         jobTerm,
					FrequencyResume: termCount(resumeTerms, resumeTerm),
					FrequencyJob:    termCount(jobTerms, jobTerm),
					ImportanceScore: a.keywordImportance(jobTerm, category) * sim,
					ContextMatches:  []string{resumeTerm},
					Category:        category,
				})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ImportanceScore > matches[j].ImportanceScore
	})
	return matches
}

const (
	criticalMissingCap   = 10
	importantMissingCap  = 8
	niceToHaveMissingCap = 5
)

// AnalyzeMissingKeywords buckets job terms not covered by the resume into
// critical / important / nice-to-have severity tiers.
func (a *Analyzer) AnalyzeMissingKeywords(resumeKeywords, jobKeywords map[string][]string) MissingKeywords {
	missing := MissingKeywords{
		Critical:   []string{},
		Important:  []string{},
		NiceToHave: []string{},
	}
	for _, category := range a.cfg.matchOrder() {
		jobTerms := jobKeywords[category]
		if len(jobTerms) == 0 {
			continue
		}
		resumeTerms := resumeKeywords[category]
		weight := a.cfg.categoryWeight(category)
		for _, term := range jobTerms {
			if termCovered(term, resumeTerms) {
				continue
			}
			importance := a.keywordImportance(term, category)
			switch {
			case weight >= 0.9 || importance >= 0.9:
				missing.Critical = append(missing.Critical, term)
			case weight >= 0.7 || importance >= 0.7:
				missing.Important = append(missing.Important, term)
			default:
				missing.NiceToHave = append(missing.NiceToHave, term)
			}
		}
	}
	missing.Critical = capList(missing.Critical, criticalMissingCap)
	missing.Important = capList(missing.Important, importantMissingCap)
	missing.NiceToHave = capList(missing.NiceToHave, niceToHaveMissingCap)
	return missing
}

func termCovered(term string, resumeTerms []string) bool {
	for _, rt := range resumeTerms {
		if termSimilarity(term, rt) >= similarityThreshold {
			return true
		}
	}
	return false
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
