package compat

import (
	"reflect"
	"testing"
)

func TestScoreEmptyProfile(t *testing.T) {
	m := NewMatcher()
	job := JobPosting{
		Title:          "Backend Engineer",
		Description:    "golang services",
		Requirements:   "bachelor degree required",
		RequiredSkills: []string{"go"},
	}

	got := m.Score(ResumeProfile{}, job)

	// Skills, experience and keywords all zero; only the neutral education
	// score contributes to the composite.
	if got.OverallScore != 7.5 {
		t.Fatalf("overall = %v, want 7.5", got.OverallScore)
	}
	if got.SkillScore != 0 || got.ExperienceScore != 0 || got.KeywordScore != 0 {
		t.Errorf("expected zero sub-scores, got %+v", got)
	}
	if got.EducationScore != neutralEducationScore {
		t.Errorf("education = %v, want %v", got.EducationScore, neutralEducationScore)
	}
	if len(got.MissingSkills) != 1 || got.MissingSkills[0] != "go" {
		t.Errorf("missing skills = %v, want [go]", got.MissingSkills)
	}
	if len(got.Recommendations) == 0 {
		t.Errorf("recommendations must never be empty")
	}
}

func TestScoreCompositeRange(t *testing.T) {
	m := NewMatcher()
	resume := ResumeProfile{
		Skills: []string{"go", "postgres", "kafka"},
		Experience: []ExperienceEntry{
			{Title: "Backend Engineer", Company: "Acme", Description: "golang services with kafka and postgres"},
		},
		Education: []EducationEntry{{Degree: "Bachelor of Science in Computer Science"}},
		RawText:   "backend engineer golang services kafka postgres production experience",
	}
	job := JobPosting{
		Title:           "Backend Engineer",
		Description:     "golang services with kafka and postgres",
		Requirements:    "bachelor degree, production experience",
		RequiredSkills:  []string{"go", "kafka"},
		PreferredSkills: []string{"postgres"},
		Keywords:        []string{"golang", "kafka"},
		ExperienceLevel: "mid",
	}

	got := m.Score(resume, job)
	if got.OverallScore < 0 || got.OverallScore > 100 {
		t.Fatalf("overall out of range: %v", got.OverallScore)
	}
	if got.SkillScore != 100.0 {
		t.Errorf("full skill coverage = %v, want 100.0", got.SkillScore)
	}
	if len(got.MatchedSkills) != 3 {
		t.Errorf("matched = %v, want all three skills", got.MatchedSkills)
	}
	if len(got.MissingSkills) != 0 {
		t.Errorf("unexpected missing skills: %v", got.MissingSkills)
	}
}

func TestScoreDeterministic(t *testing.T) {
	m := NewMatcher()
	resume := ResumeProfile{
		Skills:  []string{"python", "sql"},
		RawText: "data analyst with python and sql",
		Education: []EducationEntry{
			{Degree: "Bachelor of Science in Statistics"},
		},
	}
	job := JobPosting{
		Title:          "Data Analyst",
		Description:    "analyze data with python and sql",
		Requirements:   "bachelor degree",
		RequiredSkills: []string{"python", "sql", "tableau"},
	}

	first := m.Score(resume, job)
	for i := 0; i < 5; i++ {
		if again := m.Score(resume, job); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different result", i)
		}
	}
}

func TestScoreSeniorLevelShortfall(t *testing.T) {
	m := NewMatcher()
	resume := ResumeProfile{
		Experience: []ExperienceEntry{
			{Title: "Backend Engineer", Company: "Acme", Description: "golang backend services"},
		},
		RawText: "golang backend services",
	}
	junior := m.Score(resume, JobPosting{
		Title:       "Backend Engineer",
		Description: "golang backend services",
	})
	senior := m.Score(resume, JobPosting{
		Title:           "Backend Engineer",
		Description:     "golang backend services",
		ExperienceLevel: "senior",
	})
	if senior.ExperienceScore >= junior.ExperienceScore {
		t.Fatalf("senior requirement with one position did not lower the score: %v vs %v",
			senior.ExperienceScore, junior.ExperienceScore)
	}
}
