package ats

import (
	"strings"
	"testing"
)

func TestGenerateSuggestionsScoreTiers(t *testing.T) {
	a := NewAnalyzer(nil)
	tests := []struct {
		score float64
		want  string
	}{
		{20, "CRITICAL"},
		{45, "keyword optimization"},
		{60, "Good foundation"},
		{80, "Strong profile"},
		{95, "Excellent alignment"},
	}
	for _, tt := range tests {
		got := a.GenerateSuggestions(tt.score, MissingKeywords{}, WeaknessAnalysis{}, DetailedAnalysis{KeywordDensity: 1.0}, "software")
		if len(got) == 0 {
			t.Fatalf("score %v: no suggestions", tt.score)
		}
		if !strings.Contains(got[0], tt.want) {
			t.Errorf("score %v: first suggestion %q, want to contain %q", tt.score, got[0], tt.want)
		}
	}
}

func TestGenerateSuggestionsCriticalSkills(t *testing.T) {
	a := NewAnalyzer(nil)
	missing := MissingKeywords{Critical: []string{"kubernetes", "terraform", "aws", "docker"}}

	got := a.GenerateSuggestions(55, missing, WeaknessAnalysis{}, DetailedAnalysis{KeywordDensity: 1.0}, "devops")

	var action string
	for _, s := range got {
		if strings.HasPrefix(s, "IMMEDIATE ACTION") {
			action = s
		}
	}
	if action == "" {
		t.Fatalf("no immediate-action suggestion in %v", got)
	}
	if !strings.Contains(action, "kubernetes") || strings.Contains(action, "docker") {
		t.Errorf("expected top-3 critical skills only, got %q", action)
	}
}

func TestGenerateSuggestionsCapped(t *testing.T) {
	a := NewAnalyzer(nil)
	missing := MissingKeywords{Critical: []string{"python", "react", "aws"}}
	weaknesses := WeaknessAnalysis{
		QuantificationGaps: []string{"a", "b", "c", "d", "e"},
		FormattingIssues:   []string{"Add professional email address", "Include phone number"},
		MissingSoftSkills:  []string{"leadership", "communication", "teamwork"},
	}

	got := a.GenerateSuggestions(40, missing, weaknesses, DetailedAnalysis{KeywordDensity: 0.1}, "software")
	if len(got) != maxSuggestions {
		t.Fatalf("suggestions not capped: got %d, want %d: %v", len(got), maxSuggestions, got)
	}
}

func TestGenerateSuggestionsLowDensity(t *testing.T) {
	a := NewAnalyzer(nil)
	got := a.GenerateSuggestions(90, MissingKeywords{}, WeaknessAnalysis{}, DetailedAnalysis{KeywordDensity: 0.2}, "general")

	found := false
	for _, s := range got {
		if strings.Contains(s, "keyword density") {
			found = true
		}
	}
	if !found {
		t.Fatalf("low density not surfaced: %v", got)
	}
}
