package ats

import "testing"

func TestExperienceGaps(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		job    string
		want   string
	}{
		{
			name:   "shortfall against stated requirement",
			resume: "3 years of backend work",
			job:    "requires 5 years of development",
			want:   "Experience gap: 2 years short",
		},
		{
			name:   "resume silent on years counts as zero",
			resume: "backend work on payment systems",
			job:    "requires 5 years of development",
			want:   "Experience gap: 5 years short",
		},
		{
			name:   "missing seniority term",
			resume: "backend developer",
			job:    "leadership role in platform engineering",
			want:   "Missing leadership experience",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gaps := experienceGaps(tt.resume, tt.job)
			if !containsTerm(gaps, tt.want) {
				t.Fatalf("gaps = %v, want to contain %q", gaps, tt.want)
			}
		})
	}
}

func TestExperienceGapsNoneWhenQualified(t *testing.T) {
	gaps := experienceGaps("8 years of development", "requires 5 years of development")
	for _, g := range gaps {
		if g == "Experience gap: 0 years short" || g == "Experience gap: -3 years short" {
			t.Fatalf("unexpected gap reported: %v", gaps)
		}
	}
	if containsTerm(gaps, "Experience gap: 5 years short") {
		t.Fatalf("qualified resume flagged: %v", gaps)
	}
}

func TestEducationGaps(t *testing.T) {
	gaps := educationGaps("self-taught engineer", "bachelor degree in computer science required")
	if !containsTerm(gaps, "Missing bachelor degree requirement") {
		t.Errorf("bachelor gap missing: %v", gaps)
	}
	if !containsTerm(gaps, "Missing degree degree requirement") {
		t.Errorf("degree gap missing: %v", gaps)
	}

	none := educationGaps("bachelor degree holder", "bachelor degree required")
	if len(none) != 0 {
		t.Errorf("covered requirements flagged: %v", none)
	}
}

func TestFormattingIssuesContactInfo(t *testing.T) {
	raw := "John Smith\nBuilt payment systems in Go\nExperience at Acme"
	issues := formattingIssues(raw)
	if !containsTerm(issues, "Add professional email address") {
		t.Errorf("missing email issue: %v", issues)
	}
	if !containsTerm(issues, "Include phone number") {
		t.Errorf("missing phone issue: %v", issues)
	}

	withContact := "John Smith\njohn.smith@example.com\n555-123-4567\nBuilt payment systems"
	issues = formattingIssues(withContact)
	if containsTerm(issues, "Add professional email address") || containsTerm(issues, "Include phone number") {
		t.Errorf("contact info present but flagged: %v", issues)
	}
}

func TestFormattingIssuesWeakVerbs(t *testing.T) {
	raw := "a@b.io\n555-123-4567\nResponsible for deployments and worked on the website"
	issues := formattingIssues(raw)
	if !containsTerm(issues, "Replace weak verbs with strong action verbs") {
		t.Fatalf("weak verbs not flagged: %v", issues)
	}
	count := 0
	for _, i := range issues {
		if i == "Replace weak verbs with strong action verbs" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("weak-verb issue reported %d times: %v", count, issues)
	}
}

func TestQuantificationGaps(t *testing.T) {
	gaps := quantificationGaps("led multiple projects and managed team of 12 and improved performance by 40%")
	if !containsTerm(gaps, "Quantify 'led' achievements with specific numbers or percentages") {
		t.Errorf("unquantified 'led' not flagged: %v", gaps)
	}
	if containsTerm(gaps, "Quantify 'managed' achievements with specific numbers or percentages") {
		t.Errorf("quantified 'managed' flagged: %v", gaps)
	}
	if containsTerm(gaps, "Quantify 'improved' achievements with specific numbers or percentages") {
		t.Errorf("quantified 'improved' flagged: %v", gaps)
	}
}

func TestAnalyzeWeaknessesCaps(t *testing.T) {
	a := NewAnalyzer(nil)
	missing := MissingKeywords{
		Critical:  []string{"a", "b", "c", "d", "e", "f"},
		Important: []string{"g", "h", "i", "j"},
	}
	w := a.AnalyzeWeaknesses("", "", "", missing)
	if len(w.MissingHardSkills) != missingHardCap {
		t.Fatalf("hard skills not capped: got %d, want %d", len(w.MissingHardSkills), missingHardCap)
	}
}

func TestAnalyzeStrengthsBuckets(t *testing.T) {
	a := NewAnalyzer(nil)
	matches := []KeywordMatch{
		{Keyword: "python", Category: categoryCriticalTechnical, ImportanceScore: 1.0},
		{Keyword: "html", Category: categoryImportantTechnical, ImportanceScore: 0.8},
		{Keyword: "scrum", Category: categoryMethodologies, ImportanceScore: 0.6},
		{Keyword: "pandas", Category: categoryFrameworks, ImportanceScore: 0.7},
		{Keyword: "leadership", Category: categorySoftSkills, ImportanceScore: 0.5},
	}
	s := a.AnalyzeStrengths("bachelor degree", "bachelor required", matches)
	if len(s.StrongTechnicalSkills) != 2 {
		t.Errorf("technical bucket = %+v, want python and html", s.StrongTechnicalSkills)
	}
	if len(s.StrongExperienceMatches) != 2 {
		t.Errorf("experience bucket = %+v, want scrum and pandas", s.StrongExperienceMatches)
	}
	if !containsTerm(s.EducationAdvantages, "bachelor") {
		t.Errorf("bachelor advantage missing: %v", s.EducationAdvantages)
	}
}
