package ats

import (
	"regexp"
	"sort"
	"strings"
)

// multiwordPatterns are fixed multi-word technical phrases extracted verbatim
// from normalized text.
var multiwordPatterns = []string{
	"machine learning", "deep learning", "artificial intelligence",
	"data science", "data analysis", "data engineering",
	"web development", "mobile development", "software engineering",
	"full stack", "front end", "back end", "frontend", "backend",
	"cloud computing", "cloud architecture", "microservices",
	"agile development", "scrum master", "product owner",
	"test driven development", "behavior driven development",
	"continuous integration", "continuous deployment", "devops",
	"version control", "source control", "code review",
	"api development", "rest api", "graphql api",
	"database design", "system architecture", "network security",
	"project management", "team leadership", "cross functional",
	"problem solving", "critical thinking", "analytical skills",
	"communication skills", "presentation skills",
	"business intelligence", "digital transformation",
	"user experience", "user interface", "customer experience",
	"product development", "software architecture",
}

var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%\s*(?:improvement|increase|decrease|reduction|growth)`),
	regexp.MustCompile(`\$\d+(?:,\d+)*(?:k|m|million|billion)?`),
	regexp.MustCompile(`\d+(?:,\d+)*\s*(?:users|customers|clients|projects|applications)`),
	regexp.MustCompile(`\d+(?:\.\d+)?x\s*(?:faster|improvement|increase)`),
	regexp.MustCompile(`reduced.*?by\s*\d+%`),
	regexp.MustCompile(`increased.*?by\s*\d+%`),
	regexp.MustCompile(`improved.*?by\s*\d+%`),
	regexp.MustCompile(`\d+\s*(?:years?|months?)\s*(?:experience|exp)`),
	regexp.MustCompile(`managed\s*\d+\s*(?:people|team|members)`),
	regexp.MustCompile(`led\s*\d+\s*(?:people|team|members)`),
}

const generalBucketSize = 30

// ExtractKeywords walks the configured skill categories and tags which terms
// occur in the (normalized) text, then adds the multiword, quantified and
// general-frequency buckets. Empty input yields an empty mapping, never an
// error.
func (a *Analyzer) ExtractKeywords(text string) map[string][]string {
	out := make(map[string][]string, len(a.cfg.Categories)+3)
	if text == "" {
		return out
	}

	for _, cat := range a.cfg.Categories {
		var present []string
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				present = append(present, kw)
			}
		}
		if len(present) > 0 {
			out[cat.Name] = present
		}
	}

	if terms := extractMultiwordTerms(text); len(terms) > 0 {
		out[categoryMultiword] = terms
	}
	if terms := extractQuantifiedTerms(text); len(terms) > 0 {
		out[categoryQuantified] = terms
	}
	if terms := frequentTerms(text, generalBucketSize); len(terms) > 0 {
		out[categoryGeneral] = terms
	}
	return out
}

func extractMultiwordTerms(text string) []string {
	var terms []string
	for _, phrase := range multiwordPatterns {
		if strings.Contains(text, phrase) {
			terms = append(terms, phrase)
		}
	}
	return terms
}

func extractQuantifiedTerms(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, re := range quantifiedPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				terms = append(terms, m)
			}
		}
	}
	return terms
}

// frequentTerms returns the n most frequent non-stopword tokens longer than
// two characters, ranked by count then first occurrence.
func frequentTerms(text string, n int) []string {
	words := strings.Fields(text)
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range words {
		if len(w) <= 2 || stopwords[w] {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	terms := make([]string, 0, len(counts))
	for w := range counts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// termCount reports how many times term occurs in the list.
func termCount(terms []string, term string) int {
	count := 0
	for _, t := range terms {
		if t == term {
			count++
		}
	}
	return count
}
