package ats

import (
	"fmt"
	"regexp"
	"strings"
)

var educationTerms = []string{
	"bachelor", "master", "phd", "mba", "degree", "university",
	"college", "certification", "certified", "diploma",
}

var degreeRequirementTerms = []string{"bachelor", "master", "phd", "mba", "degree"}

var seniorityTerms = []string{"management", "leadership", "senior", "architect", "principal"}

var weakVerbPhrases = []string{"responsible for", "worked on", "helped with", "involved in"}

var (
	yearsRe = regexp.MustCompile(`(\d+)\+?\s*years?`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
)

// quantifiableVerbs pairs an achievement verb with the pattern that counts as
// a quantified use of it. A verb present without any quantified use is a gap.
var quantifiableVerbs = []struct {
	verb       string
	presentRe  *regexp.Regexp
	quantified *regexp.Regexp
}{
	{"improved", regexp.MustCompile(`\bimproved\b`), regexp.MustCompile(`improved\s+(?:\d|.{0,30}?by\s*\d)`)},
	{"increased", regexp.MustCompile(`\bincreased\b`), regexp.MustCompile(`increased\s+(?:\d|.{0,30}?by\s*\d)`)},
	{"reduced", regexp.MustCompile(`\breduced\b`), regexp.MustCompile(`reduced\s+(?:\d|.{0,30}?by\s*\d)`)},
	{"managed", regexp.MustCompile(`\bmanaged\b`), regexp.MustCompile(`managed\s+(?:\d|team\s*of\s*\d)`)},
	{"led", regexp.MustCompile(`\bled\b`), regexp.MustCompile(`led\s+(?:\d|team\s*of\s*\d)`)},
	{"developed", regexp.MustCompile(`\bdeveloped\b`), regexp.MustCompile(`developed\s+\d`)},
	{"created", regexp.MustCompile(`\bcreated\b`), regexp.MustCompile(`created\s+\d`)},
}

const (
	strongTechnicalCap   = 10
	strongExperienceCap  = 5
	missingHardCap       = 8
	missingSoftCap       = 5
	experienceGapCap     = 5
	educationGapCap      = 3
	formattingIssueCap   = 3
	quantificationGapCap = 5
)

// AnalyzeStrengths derives the resume's strengths from the match set and the
// two texts.
func (a *Analyzer) AnalyzeStrengths(resumeText, jobText string, matches []KeywordMatch) StrengthAnalysis {
	var technical, experience []KeywordMatch
	for _, m := range matches {
		switch m.Category {
		case categoryCriticalTechnical, categoryImportantTechnical:
			technical = append(technical, m)
		case categoryMethodologies, categoryFrameworks:
			experience = append(experience, m)
		}
	}
	if len(technical) > strongTechnicalCap {
		technical = technical[:strongTechnicalCap]
	}
	if len(experience) > strongExperienceCap {
		experience = experience[:strongExperienceCap]
	}

	return StrengthAnalysis{
		StrongTechnicalSkills:   technical,
		StrongExperienceMatches: experience,
		EducationAdvantages:     educationAdvantages(resumeText, jobText),
		QuantifiedAchievements:  extractAchievements(resumeText),
		KeywordDensityScore:     keywordDensity(resumeText, jobText),
	}
}

// AnalyzeWeaknesses derives the resume's gaps. Formatting checks run on the
// raw resume text so contact patterns survive normalization.
func (a *Analyzer) AnalyzeWeaknesses(resumeText, jobText, rawResumeText string, missing MissingKeywords) WeaknessAnalysis {
	hard := append(append([]string{}, missing.Critical...), missing.Important...)
	if len(hard) > missingHardCap {
		hard = hard[:missingHardCap]
	}

	return WeaknessAnalysis{
		MissingHardSkills:        hard,
		MissingSoftSkills:        capList(a.missingSoftSkills(resumeText, jobText), missingSoftCap),
		WeakExperienceAreas:      capList(experienceGaps(resumeText, jobText), experienceGapCap),
		MissingEducationKeywords: capList(educationGaps(resumeText, jobText), educationGapCap),
		FormattingIssues:         capList(formattingIssues(rawResumeText), formattingIssueCap),
		QuantificationGaps:       capList(quantificationGaps(resumeText), quantificationGapCap),
	}
}

func educationAdvantages(resumeText, jobText string) []string {
	var out []string
	for _, term := range educationTerms {
		if strings.Contains(resumeText, term) && strings.Contains(jobText, term) {
			out = append(out, term)
		}
	}
	return out
}

func (a *Analyzer) missingSoftSkills(resumeText, jobText string) []string {
	cat, ok := a.cfg.category(categorySoftSkills)
	if !ok {
		return nil
	}
	var out []string
	for _, skill := range cat.Keywords {
		if strings.Contains(jobText, skill) && !strings.Contains(resumeText, skill) {
			out = append(out, skill)
		}
	}
	return out
}

// experienceGaps reports a years-of-experience shortfall and seniority terms
// the job asks for that the resume never mentions. A job that states a year
// requirement counts against a resume with no year mention at all.
func experienceGaps(resumeText, jobText string) []string {
	var gaps []string

	if m := yearsRe.FindStringSubmatch(jobText); m != nil {
		required := atoiSafe(m[1])
		available := 0
		if rm := yearsRe.FindStringSubmatch(resumeText); rm != nil {
			available = atoiSafe(rm[1])
		}
		if available < required {
			gaps = append(gaps, fmt.Sprintf("Experience gap: %d years short", required-available))
		}
	}

	for _, term := range seniorityTerms {
		if strings.Contains(jobText, term) && !strings.Contains(resumeText, term) {
			gaps = append(gaps, fmt.Sprintf("Missing %s experience", term))
		}
	}
	return gaps
}

func educationGaps(resumeText, jobText string) []string {
	var gaps []string
	for _, term := range degreeRequirementTerms {
		if strings.Contains(jobText, term) && !strings.Contains(resumeText, term) {
			gaps = append(gaps, fmt.Sprintf("Missing %s degree requirement", term))
		}
	}
	return gaps
}

func formattingIssues(rawResumeText string) []string {
	var issues []string

	longParagraphs := 0
	for _, p := range strings.Split(rawResumeText, "\n") {
		if len(strings.Fields(p)) > 50 {
			longParagraphs++
		}
	}
	if longParagraphs > 3 {
		issues = append(issues, "Use bullet points instead of long paragraphs")
	}

	if !emailRe.MatchString(rawResumeText) {
		issues = append(issues, "Add professional email address")
	}
	if !phoneRe.MatchString(rawResumeText) {
		issues = append(issues, "Include phone number")
	}

	lower := strings.ToLower(rawResumeText)
	for _, phrase := range weakVerbPhrases {
		if strings.Contains(lower, phrase) {
			issues = append(issues, "Replace weak verbs with strong action verbs")
			break
		}
	}
	return issues
}

func quantificationGaps(resumeText string) []string {
	var gaps []string
	for _, qv := range quantifiableVerbs {
		if qv.presentRe.MatchString(resumeText) && !qv.quantified.MatchString(resumeText) {
			gaps = append(gaps, fmt.Sprintf("Quantify '%s' achievements with specific numbers or percentages", qv.verb))
		}
	}
	return gaps
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
