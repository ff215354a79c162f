package compat

import "testing"

func TestScoreKeywordsDegenerate(t *testing.T) {
	if got := scoreKeywords("", JobPosting{Description: "anything"}); got != 0.0 {
		t.Errorf("empty resume = %v, want 0.0", got)
	}
	if got := scoreKeywords("anything", JobPosting{}); got != 0.0 {
		t.Errorf("empty job text = %v, want 0.0", got)
	}
}

func TestScoreKeywordsIdenticalTexts(t *testing.T) {
	text := "golang backend developer with kafka and postgres production experience"
	got := scoreKeywords(text, JobPosting{Description: text})
	if got < 95 {
		t.Fatalf("identical texts = %v, want >= 95", got)
	}
}

func TestScoreKeywordsBonus(t *testing.T) {
	resume := "python services running in production"
	job := JobPosting{
		Description: "java enterprise middleware consulting",
		Keywords:    []string{"python", "rust"},
	}
	got := scoreKeywords(resume, job)
	// Disjoint vocabularies give zero cosine similarity; one of two listed
	// keywords is present, so only the bonus contributes.
	if got != 10.0 {
		t.Fatalf("keyword bonus = %v, want 10.0", got)
	}
}

func TestScoreKeywordsCapped(t *testing.T) {
	text := "golang kafka postgres grpc terraform docker"
	job := JobPosting{
		Description: text,
		Keywords:    []string{"golang", "kafka", "postgres"},
	}
	got := scoreKeywords(text, job)
	if got > 100.0 {
		t.Fatalf("score exceeded cap: %v", got)
	}
}
