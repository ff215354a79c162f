package compat

import (
	"strings"

	"jobmatch-backend/internal/textsim"
)

// levelRequirements maps a required experience level to the expected range of
// resume positions. Below the minimum costs 10 points per missing position;
// above the maximum earns a small over-qualification bonus capped at 10.
var levelRequirements = []struct {
	name     string
	min, max int
}{
	{"entry", 0, 2},
	{"junior", 0, 3},
	{"mid", 2, 7},
	{"senior", 5, 15},
	{"lead", 7, 20},
	{"principal", 10, 25},
}

// scoreExperience averages each position's text similarity against the job
// title and description, then adjusts for the required experience level. A
// resume with no positions scores zero.
func scoreExperience(entries []ExperienceEntry, job JobPosting) float64 {
	if len(entries) == 0 {
		return 0.0
	}

	jobText := strings.ToLower(job.Title + " " + job.Description)
	total := 0.0
	for _, e := range entries {
		entryText := strings.ToLower(e.Title + " " + e.Description + " " + e.Company)
		total += textsim.CosineSimilarity(entryText, jobText)
	}

	score := total / float64(len(entries)) * 100
	score = adjustForLevel(score, len(entries), strings.ToLower(job.ExperienceLevel))
	if score > 100 {
		score = 100
	}
	return score
}

func adjustForLevel(score float64, positions int, level string) float64 {
	for _, req := range levelRequirements {
		if req.name != level {
			continue
		}
		if positions < req.min {
			score -= float64(req.min-positions) * 10
			if score < 0 {
				score = 0
			}
		} else if positions > req.max {
			bonus := float64(positions-req.max) * 2
			if bonus > 10 {
				bonus = 10
			}
			score += bonus
			if score > 100 {
				score = 100
			}
		}
		break
	}
	return score
}
