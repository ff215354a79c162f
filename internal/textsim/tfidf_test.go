package textsim

import "testing"

func TestCosineSimilarityIdenticalTexts(t *testing.T) {
	text := "senior backend engineer building distributed systems in go and postgres"
	got := CosineSimilarity(text, text)
	if got < 0.99 || got > 1.0 {
		t.Fatalf("identical texts similarity = %.4f, want ~1.0", got)
	}
}

func TestCosineSimilarityDisjointTexts(t *testing.T) {
	got := CosineSimilarity(
		"gardening pottery watercolor painting",
		"kubernetes terraform prometheus grafana",
	)
	if got != 0 {
		t.Fatalf("disjoint texts similarity = %.4f, want 0", got)
	}
}

func TestCosineSimilarityDegenerateInput(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
	}{
		{name: "both_empty", a: "", b: ""},
		{name: "one_empty", a: "go developer", b: ""},
		{name: "stopwords_only", a: "the and of with", b: "the and of with"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CosineSimilarity(tc.a, tc.b); got != 0 {
				t.Fatalf("similarity = %.4f, want 0", got)
			}
		})
	}
}

func TestCosineSimilarityRange(t *testing.T) {
	a := "python developer with aws experience and docker"
	b := "looking for a python engineer familiar with cloud deployments"
	got := CosineSimilarity(a, b)
	if got <= 0 || got >= 1 {
		t.Fatalf("partial overlap similarity = %.4f, want in (0,1)", got)
	}
}

func TestCosineSimilarityDeterministic(t *testing.T) {
	a := "led migration of monolith to microservices improving deploy frequency"
	b := "experience with microservices and continuous deployment required"
	first := CosineSimilarity(a, b)
	for i := 0; i < 5; i++ {
		if got := CosineSimilarity(a, b); got != first {
			t.Fatalf("similarity drifted between calls: %.10f vs %.10f", first, got)
		}
	}
}

func TestTokenizeKeepsTechnicalTerms(t *testing.T) {
	tokens := tokenize("Worked with C++, C# and Node.js on a REST API")
	want := map[string]bool{"c++": true, "c#": true, "node.js": true}
	found := map[string]bool{}
	for _, tok := range tokens {
		if want[tok] {
			found[tok] = true
		}
	}
	for term := range want {
		if !found[term] {
			t.Fatalf("tokenize dropped technical term %q (got %v)", term, tokens)
		}
	}
}
