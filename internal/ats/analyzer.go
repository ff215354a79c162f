// Package ats scores a resume against a job description the way applicant
// tracking systems do: keyword extraction and cross-matching over a weighted
// skill taxonomy, industry and experience-level alignment, quantified-impact
// and formatting signals, folded into a 0-100 score with gap analysis and
// prioritized suggestions.
package ats

import "math"

// Analyzer runs the full ATS scoring pipeline. It is stateless apart from its
// read-only config and safe for concurrent use.
type Analyzer struct {
	cfg *Config
}

// NewAnalyzer returns an analyzer over cfg, or over DefaultConfig when cfg is
// nil.
func NewAnalyzer(cfg *Config) *Analyzer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Analyzer{cfg: cfg}
}

const (
	strongKeywordsCap = 15
	summarySkillsCap  = 10
	summaryAchieveCap = 5
	summaryWeakCap    = 5
)

// Analyze scores resumeText against jobDescription. Degenerate input (either
// text empty) still produces a complete result with a low score and empty
// lists; repeated calls with the same inputs produce identical results.
func (a *Analyzer) Analyze(resumeText, jobDescription string) AnalysisResult {
	resumeClean := NormalizeText(resumeText)
	jobClean := NormalizeText(jobDescription)

	resumeKeywords := a.ExtractKeywords(resumeClean)
	jobKeywords := a.ExtractKeywords(jobClean)

	industry := a.DetectIndustry(jobClean)
	level := a.DetectExperienceLevel(jobClean)

	matches := a.MatchKeywords(resumeKeywords, jobKeywords)
	missing := a.AnalyzeMissingKeywords(resumeKeywords, jobKeywords)

	score := roundTenth(a.CalculateScore(matches, missing, resumeClean, jobClean, industry, level))

	strengths := a.AnalyzeStrengths(resumeClean, jobClean, matches)
	weaknesses := a.AnalyzeWeaknesses(resumeClean, jobClean, resumeText, missing)
	detailed := a.detailedAnalysis(matches, jobKeywords, resumeClean, jobClean, industry, level)

	return AnalysisResult{
		ATSScore:        score,
		StrongKeywords:  matchedKeywords(matches, strongKeywordsCap),
		MissingKeywords: ensureList(missing.Critical),
		Suggestions:     a.GenerateSuggestions(score, missing, weaknesses, detailed, industry),
		Detailed:        detailed,
		Strengths:       summarizeStrengths(strengths),
		Weaknesses:      summarizeWeaknesses(weaknesses),
	}
}

func (a *Analyzer) detailedAnalysis(matches []KeywordMatch, jobKeywords map[string][]string, resumeClean, jobClean, industry, level string) DetailedAnalysis {
	density := keywordDensity(resumeClean, jobClean)
	industryAlign := a.industryAlignment(resumeClean, industry)
	levelAlign := a.experienceAlignment(resumeClean, level)
	quantification := a.impactScore(resumeClean)
	formatting := formattingQuality(resumeClean)

	expected := 0
	for _, category := range a.cfg.matchOrder() {
		expected += len(jobKeywords[category])
	}
	ratio := 0.0
	if expected > 0 {
		ratio = capUnit(float64(len(matches)) / float64(expected))
	}

	components := []struct {
		name  string
		value float64
	}{
		{"keyword coverage", density},
		{"industry alignment", industryAlign},
		{"experience level match", levelAlign},
		{"quantified impact", quantification},
		{"formatting", formatting},
	}
	strengthAreas := []string{}
	weaknessAreas := []string{}
	for _, c := range components {
		switch {
		case c.value >= 0.7:
			strengthAreas = append(strengthAreas, c.name)
		case c.value < 0.4:
			weaknessAreas = append(weaknessAreas, c.name)
		}
	}

	return DetailedAnalysis{
		KeywordDensity:        density,
		IndustryAlignment:     industryAlign,
		ExperienceLevelMatch:  levelAlign,
		QuantificationScore:   quantification,
		FormattingScore:       formatting,
		StrengthAreas:         strengthAreas,
		WeaknessAreas:         weaknessAreas,
		TotalKeywordsFound:    len(matches),
		TotalKeywordsExpected: expected,
		MatchRatio:            ratio,
	}
}

// matchedKeywords lists distinct matched job terms in importance order, capped.
func matchedKeywords(matches []KeywordMatch, max int) []string {
	seen := make(map[string]bool, len(matches))
	out := []string{}
	for _, m := range matches {
		if seen[m.Keyword] {
			continue
		}
		seen[m.Keyword] = true
		out = append(out, m.Keyword)
		if len(out) == max {
			break
		}
	}
	return out
}

func summarizeStrengths(s StrengthAnalysis) StrengthsSummary {
	skills := []TechnicalSkillScore{}
	for _, m := range s.StrongTechnicalSkills {
		skills = append(skills, TechnicalSkillScore{Keyword: m.Keyword, Score: m.ImportanceScore})
		if len(skills) == summarySkillsCap {
			break
		}
	}
	return StrengthsSummary{
		TechnicalSkills:        skills,
		QuantifiedAchievements: ensureList(capList(s.QuantifiedAchievements, summaryAchieveCap)),
		KeywordDensityScore:    s.KeywordDensityScore,
	}
}

func summarizeWeaknesses(w WeaknessAnalysis) WeaknessesSummary {
	return WeaknessesSummary{
		MissingHardSkills: ensureList(w.MissingHardSkills),
		MissingSoftSkills: ensureList(w.MissingSoftSkills),
		WeakAreas:         ensureList(capList(w.WeakExperienceAreas, summaryWeakCap)),
		FormattingIssues:  ensureList(w.FormattingIssues),
	}
}

// ensureList keeps JSON output as [] rather than null.
func ensureList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
