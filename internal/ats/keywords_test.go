package ats

import (
	"testing"
)

func TestExtractKeywordsCategories(t *testing.T) {
	a := NewAnalyzer(nil)
	text := NormalizeText("Python and Docker engineer with machine learning background, used Django and pandas daily")

	got := a.ExtractKeywords(text)

	critical := got[categoryCriticalTechnical]
	for _, want := range []string{"python", "docker", "machine learning"} {
		if !containsTerm(critical, want) {
			t.Errorf("critical bucket missing %q: %v", want, critical)
		}
	}
	if !containsTerm(got[categoryImportantTechnical], "django") {
		t.Errorf("important bucket missing django: %v", got[categoryImportantTechnical])
	}
	if !containsTerm(got[categoryFrameworks], "pandas") {
		t.Errorf("frameworks bucket missing pandas: %v", got[categoryFrameworks])
	}
	if !containsTerm(got[categoryMultiword], "machine learning") {
		t.Errorf("multiword bucket missing machine learning: %v", got[categoryMultiword])
	}
}

func TestExtractKeywordsQuantified(t *testing.T) {
	a := NewAnalyzer(nil)
	text := NormalizeText("improved latency by 40% reduction and managed 5 team members")

	got := a.ExtractKeywords(text)
	if len(got[categoryQuantified]) == 0 {
		t.Fatalf("expected quantified terms, got none: %v", got)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	a := NewAnalyzer(nil)
	got := a.ExtractKeywords("")
	if len(got) != 0 {
		t.Fatalf("expected empty mapping for empty text, got %v", got)
	}
}

func TestFrequentTermsOrdering(t *testing.T) {
	text := "golang golang golang rust rust zig"
	got := frequentTerms(text, 10)
	want := []string{"golang", "rust", "zig"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestFrequentTermsSkipsStopwordsAndShortTokens(t *testing.T) {
	got := frequentTerms("the go is of experience kubernetes", 10)
	if containsTerm(got, "the") || containsTerm(got, "go") || containsTerm(got, "experience") {
		t.Fatalf("stopwords or short tokens leaked: %v", got)
	}
	if !containsTerm(got, "kubernetes") {
		t.Fatalf("expected kubernetes in %v", got)
	}
}

func containsTerm(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}
