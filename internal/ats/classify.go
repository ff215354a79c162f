package ats

import "strings"

// DetectIndustry scores the job text against each configured industry and
// returns the one with the most trigger-term hits. Ties resolve to the first
// declared industry; zero hits everywhere falls back to "general".
func (a *Analyzer) DetectIndustry(jobText string) string {
	best := ""
	bestCount := 0
	for _, industry := range a.cfg.Industries {
		count := 0
		for _, term := range industry.Terms {
			if strings.Contains(jobText, term) {
				count++
			}
		}
		if count > bestCount {
			best = industry.Name
			bestCount = count
		}
	}
	if best == "" {
		return "general"
	}
	return best
}

// DetectExperienceLevel returns the first configured level with any indicator
// hit in the job text, defaulting to "mid".
func (a *Analyzer) DetectExperienceLevel(jobText string) string {
	for _, level := range a.cfg.Levels {
		for _, term := range level.Terms {
			if strings.Contains(jobText, term) {
				return level.Name
			}
		}
	}
	return "mid"
}

// industryAlignment measures how many of the industry's trigger terms the
// resume mentions, as a fraction capped at 1.0. Unknown industries score a
// neutral 0.5.
func (a *Analyzer) industryAlignment(resumeText, industry string) float64 {
	for _, pattern := range a.cfg.Industries {
		if pattern.Name != industry {
			continue
		}
		hits := 0
		for _, term := range pattern.Terms {
			if strings.Contains(resumeText, term) {
				hits++
			}
		}
		return capUnit(float64(hits) / float64(len(pattern.Terms)))
	}
	return 0.5
}

// experienceAlignment is the same style of score against the required level's
// indicator list.
func (a *Analyzer) experienceAlignment(resumeText, requiredLevel string) float64 {
	for _, level := range a.cfg.Levels {
		if level.Name != requiredLevel {
			continue
		}
		hits := 0
		for _, term := range level.Terms {
			if strings.Contains(resumeText, term) {
				hits++
			}
		}
		return capUnit(float64(hits) / float64(len(level.Terms)))
	}
	return 0.5
}

func capUnit(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
