package compat

import (
	"strings"

	"jobmatch-backend/internal/textsim"
)

// skillMatchThreshold is the minimum fuzzy ratio (0-100) for a resume skill to
// count as covering a job skill.
const skillMatchThreshold = 80.0

// scoreSkills fuzzy-matches every job skill against the resume's skill list.
// Each job skill contributes its best ratio when matched and zero when not;
// the score is the mean contribution scaled to 0-100. Matched entries carry
// the resume's spelling, missing entries the job's.
func scoreSkills(resumeSkills, jobSkills []string) (float64, []string, []string) {
	if len(jobSkills) == 0 {
		return 100.0, append([]string{}, resumeSkills...), []string{}
	}
	if len(resumeSkills) == 0 {
		return 0.0, []string{}, append([]string{}, jobSkills...)
	}

	matched := []string{}
	missing := []string{}
	total := 0.0

	for _, jobSkill := range jobSkills {
		best := 0.0
		bestSkill := ""
		for _, resumeSkill := range resumeSkills {
			ratio := textsim.Ratio(strings.ToLower(jobSkill), strings.ToLower(resumeSkill))
			if ratio > best {
				best = ratio
				bestSkill = resumeSkill
			}
		}
		if best >= skillMatchThreshold {
			matched = append(matched, bestSkill)
			total += best / 100
		} else {
			missing = append(missing, jobSkill)
		}
	}

	return total / float64(len(jobSkills)) * 100, matched, missing
}
