package compat

import (
	"strings"

	"jobmatch-backend/internal/textsim"
)

const keywordBonusWeight = 20.0

// scoreKeywords compares the whole resume text against the job's description
// and requirements with TF-IDF cosine similarity, then adds a bonus for each
// explicitly listed job keyword the resume contains verbatim.
func scoreKeywords(resumeText string, job JobPosting) float64 {
	jobText := strings.TrimSpace(job.Description + " " + job.Requirements)
	if strings.TrimSpace(resumeText) == "" || jobText == "" {
		return 0.0
	}

	score := textsim.CosineSimilarity(strings.ToLower(resumeText), strings.ToLower(jobText)) * 100

	if len(job.Keywords) > 0 {
		resumeLower := strings.ToLower(resumeText)
		hits := 0
		for _, kw := range job.Keywords {
			if strings.Contains(resumeLower, strings.ToLower(kw)) {
				hits++
			}
		}
		score += float64(hits) / float64(len(job.Keywords)) * keywordBonusWeight
	}

	if score > 100 {
		score = 100
	}
	return score
}
