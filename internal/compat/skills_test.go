package compat

import "testing"

func TestScoreSkillsPartialOverlap(t *testing.T) {
	score, matched, missing := scoreSkills([]string{"Python", "SQL"}, []string{"Python", "Java"})

	if score != 50.0 {
		t.Fatalf("score = %v, want 50.0", score)
	}
	if len(matched) != 1 || matched[0] != "Python" {
		t.Errorf("matched = %v, want [Python]", matched)
	}
	if len(missing) != 1 || missing[0] != "Java" {
		t.Errorf("missing = %v, want [Java]", missing)
	}
}

func TestScoreSkillsVacuous(t *testing.T) {
	score, matched, missing := scoreSkills([]string{"Go", "Rust"}, nil)
	if score != 100.0 {
		t.Errorf("no job skills: score = %v, want 100.0", score)
	}
	if len(matched) != 2 || len(missing) != 0 {
		t.Errorf("no job skills: matched=%v missing=%v", matched, missing)
	}

	score, matched, missing = scoreSkills(nil, []string{"Go"})
	if score != 0.0 {
		t.Errorf("no resume skills: score = %v, want 0.0", score)
	}
	if len(matched) != 0 || len(missing) != 1 {
		t.Errorf("no resume skills: matched=%v missing=%v", matched, missing)
	}
}

func TestScoreSkillsFuzzyMatch(t *testing.T) {
	score, matched, missing := scoreSkills([]string{"kuberntes"}, []string{"kubernetes"})
	if len(matched) != 1 {
		t.Fatalf("near-miss spelling should match: matched=%v missing=%v", matched, missing)
	}
	if score < 80 || score > 100 {
		t.Errorf("fuzzy score = %v, want within [80,100]", score)
	}
}

func TestScoreSkillsCaseInsensitive(t *testing.T) {
	_, matched, _ := scoreSkills([]string{"PYTHON"}, []string{"python"})
	if len(matched) != 1 || matched[0] != "PYTHON" {
		t.Fatalf("case difference broke matching: %v", matched)
	}
}

func TestScoreSkillsPartition(t *testing.T) {
	jobSkills := []string{"go", "python", "terraform", "react", "sql"}
	_, matched, missing := scoreSkills([]string{"go", "sql", "kafka"}, jobSkills)
	if len(matched)+len(missing) != len(jobSkills) {
		t.Fatalf("every job skill must be matched or missing: matched=%v missing=%v", matched, missing)
	}
}
