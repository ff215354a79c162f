package ats

import (
	"reflect"
	"testing"
)

func TestTermSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"python", "python", 1.0},
		{"java", "javascript", 0.9},
		{"sql", "nosql", 0.9},
		{"aws", "gcp", 0.0},
	}
	for _, tt := range tests {
		if got := termSimilarity(tt.a, tt.b); got != tt.want {
			t.Errorf("termSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := termSimilarity(tt.b, tt.a); got != tt.want {
			t.Errorf("termSimilarity(%q, %q) = %v, want %v (not symmetric)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestKeywordImportance(t *testing.T) {
	a := NewAnalyzer(nil)
	tests := []struct {
		keyword  string
		category string
		want     float64
	}{
		{"python", categoryCriticalTechnical, 1.0}, // boosted, capped
		{"html", categoryImportantTechnical, 0.8},
		{"leadership", categorySoftSkills, 0.5},
		{"something", "unknown_category", defaultCategoryWeight},
	}
	for _, tt := range tests {
		if got := a.keywordImportance(tt.keyword, tt.category); got != tt.want {
			t.Errorf("keywordImportance(%q, %q) = %v, want %v", tt.keyword, tt.category, got, tt.want)
		}
	}
}

func TestMatchKeywords(t *testing.T) {
	a := NewAnalyzer(nil)
	resume := map[string][]string{
		categoryCriticalTechnical: {"python", "docker"},
		categorySoftSkills:        {"leadership"},
	}
	job := map[string][]string{
		categoryCriticalTechnical: {"python", "kubernetes"},
		categorySoftSkills:        {"leadership"},
	}

	matches := a.MatchKeywords(resume, job)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if matches[0].Keyword != "python" {
		t.Errorf("expected python first by importance, got %q", matches[0].Keyword)
	}
	if matches[0].ImportanceScore != 1.0 {
		t.Errorf("python importance = %v, want 1.0", matches[0].ImportanceScore)
	}
	if matches[1].Keyword != "leadership" || matches[1].ImportanceScore != 0.5 {
		t.Errorf("unexpected second match: %+v", matches[1])
	}
}

func TestMatchKeywordsDeterministic(t *testing.T) {
	a := NewAnalyzer(nil)
	resume := map[string][]string{
		categoryCriticalTechnical:  {"python", "java", "react"},
		categoryImportantTechnical: {"html", "css"},
	}
	job := map[string][]string{
		categoryCriticalTechnical:  {"python", "java", "react"},
		categoryImportantTechnical: {"html", "css"},
	}

	first := a.MatchKeywords(resume, job)
	for i := 0; i < 10; i++ {
		again := a.MatchKeywords(resume, job)
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d: match order changed:\n%+v\nvs\n%+v", i, first, again)
		}
	}
}

func TestAnalyzeMissingKeywords(t *testing.T) {
	a := NewAnalyzer(nil)
	resume := map[string][]string{
		categoryCriticalTechnical: {"python"},
	}
	job := map[string][]string{
		categoryCriticalTechnical:  {"python", "kubernetes"},
		categoryImportantTechnical: {"html"},
		categorySoftSkills:         {"mentoring"},
	}

	missing := a.AnalyzeMissingKeywords(resume, job)
	if !containsTerm(missing.Critical, "kubernetes") {
		t.Errorf("kubernetes should be critical: %+v", missing)
	}
	if !containsTerm(missing.Important, "html") {
		t.Errorf("html should be important: %+v", missing)
	}
	if !containsTerm(missing.NiceToHave, "mentoring") {
		t.Errorf("mentoring should be nice-to-have: %+v", missing)
	}
	if containsTerm(missing.Critical, "python") {
		t.Errorf("python is covered, must not be missing: %+v", missing)
	}
}

func TestAnalyzeMissingKeywordsCaps(t *testing.T) {
	a := NewAnalyzer(nil)
	job := map[string][]string{
		categoryCriticalTechnical: {
			"python", "java", "javascript", "react", "angular", "vue",
			"docker", "kubernetes", "aws", "azure", "gcp", "kafka",
		},
	}
	missing := a.AnalyzeMissingKeywords(map[string][]string{}, job)
	if len(missing.Critical) != criticalMissingCap {
		t.Fatalf("critical list not capped: got %d, want %d", len(missing.Critical), criticalMissingCap)
	}
}
