package textsim

import "testing"

func TestRatio(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		min  float64
		max  float64
	}{
		{name: "identical", a: "python", b: "python", min: 100, max: 100},
		{name: "case_insensitive", a: "Python", b: "pYTHON", min: 100, max: 100},
		{name: "both_empty", a: "", b: "", min: 100, max: 100},
		{name: "one_empty", a: "go", b: "", min: 0, max: 0},
		{name: "disjoint", a: "java", b: "python", min: 0, max: 30},
		{name: "close_spelling", a: "postgresql", b: "postgres", min: 80, max: 99},
		{name: "single_typo", a: "kubernetes", b: "kubernets", min: 85, max: 99},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio(tc.a, tc.b)
			if got < tc.min || got > tc.max {
				t.Fatalf("Ratio(%q, %q) = %.2f, want in [%.2f, %.2f]", tc.a, tc.b, got, tc.min, tc.max)
			}
		})
	}
}

func TestRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"javascript", "typescript"},
		{"docker", "dockerfile"},
		{"", "aws"},
	}
	for _, p := range pairs {
		if Ratio(p[0], p[1]) != Ratio(p[1], p[0]) {
			t.Fatalf("Ratio not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a    string
		b    string
		want int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "abc", 3},
		{"abc", "abc", 0},
	}
	for _, tc := range cases {
		if got := levenshtein([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Fatalf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
