package ats

// SkillCategory is a named, weighted group of domain terms. Categories are
// declared once at startup and never mutated; order is significant because
// matching and missing-keyword analysis iterate categories in declared order.
type SkillCategory struct {
	Name     string
	Weight   float64
	Keywords []string
}

// IndustryPattern maps an industry name to its trigger terms.
type IndustryPattern struct {
	Name  string
	Terms []string
}

// LevelIndicator maps an experience level to its indicator phrases.
type LevelIndicator struct {
	Name  string
	Terms []string
}

// Config is the static, shared, read-only configuration for the analyzer.
// Construct once (DefaultConfig) and pass by reference into each scoring call.
type Config struct {
	Categories []SkillCategory
	Industries []IndustryPattern
	Levels     []LevelIndicator
}

// Category names used by strength/weakness bucketing.
const (
	categoryCriticalTechnical  = "critical_technical"
	categoryImportantTechnical = "important_technical"
	categoryFrameworks         = "frameworks_libraries"
	categoryMethodologies      = "methodologies"
	categorySoftSkills         = "soft_skills"
	categoryCertifications     = "certifications"

	// Extraction buckets outside the configured categories.
	categoryMultiword  = "multiword_technical"
	categoryQuantified = "quantified"
	categoryGeneral    = "general"
)

const defaultCategoryWeight = 0.5

// DefaultConfig returns the built-in skill taxonomy, industry patterns and
// experience-level indicators.
func DefaultConfig() *Config {
	return &Config{
		Categories: []SkillCategory{
			{
				Name:   categoryCriticalTechnical,
				Weight: 1.0,
				Keywords: []string{
					"python", "java", "javascript", "react", "angular", "vue", "node.js",
					"docker", "kubernetes", "aws", "azure", "gcp", "tensorflow", "pytorch",
					"machine learning", "deep learning", "artificial intelligence", "data science",
					"sql", "postgresql", "mongodb", "redis", "elasticsearch", "kafka",
					"microservices", "rest api", "graphql", "ci/cd", "devops", "agile",
					"scrum", "git", "github", "gitlab", "jenkins", "terraform", "ansible",
				},
			},
			{
				Name:   categoryImportantTechnical,
				Weight: 0.8,
				Keywords: []string{
					"html", "css", "bootstrap", "sass", "typescript", "php", "ruby",
					"cpp", "csharp", "go", "rust", "swift", "kotlin", "scala",
					"mysql", "oracle", "cassandra", "dynamodb", "firebase", "supabase",
					"express", "django", "flask", "spring", "laravel", "rails",
					"webpack", "babel", "nginx", "apache", "linux", "unix", "windows",
				},
			},
			{
				Name:   categoryFrameworks,
				Weight: 0.7,
				Keywords: []string{
					"pandas", "numpy", "matplotlib", "seaborn", "scikit-learn",
					"fastapi", "nextjs", "nuxt", "svelte", "ember", "backbone",
					"jquery", "lodash", "moment", "axios", "fetch", "websocket",
					"redux", "vuex", "mobx", "rxjs", "jest", "mocha", "cypress",
				},
			},
			{
				Name:   categoryMethodologies,
				Weight: 0.6,
				Keywords: []string{
					"agile", "scrum", "kanban", "waterfall", "lean", "six sigma",
					"tdd", "bdd", "pair programming", "code review", "continuous integration",
					"continuous deployment", "test automation", "unit testing",
					"integration testing", "performance testing", "security testing",
				},
			},
			{
				Name:   categorySoftSkills,
				Weight: 0.5,
				Keywords: []string{
					"leadership", "communication", "teamwork", "problem solving",
					"critical thinking", "analytical", "creative", "innovative",
					"project management", "time management", "organization",
					"attention to detail", "multitasking", "adaptable", "flexible",
					"collaborative", "mentoring", "coaching", "presentation skills",
				},
			},
			{
				Name:   categoryCertifications,
				Weight: 0.9,
				Keywords: []string{
					"aws certified", "azure certified", "google cloud certified",
					"pmp", "cissp", "ceh", "cisa", "cism", "comptia", "cisco",
					"microsoft certified", "oracle certified", "scrum master",
					"product owner", "safe", "itil", "cobit", "prince2",
				},
			},
		},
		Industries: []IndustryPattern{
			{Name: "software", Terms: []string{"development", "programming", "coding", "software", "application"}},
			{Name: "data", Terms: []string{"data", "analytics", "analysis", "statistics", "machine learning"}},
			{Name: "cloud", Terms: []string{"cloud", "aws", "azure", "gcp", "serverless", "containerization"}},
			{Name: "security", Terms: []string{"security", "cybersecurity", "encryption", "authentication"}},
			{Name: "mobile", Terms: []string{"mobile", "ios", "android", "app development", "react native"}},
			{Name: "web", Terms: []string{"web", "frontend", "backend", "fullstack", "responsive"}},
			{Name: "devops", Terms: []string{"devops", "ci/cd", "deployment", "infrastructure", "monitoring"}},
		},
		Levels: []LevelIndicator{
			{Name: "senior", Terms: []string{"senior", "lead", "principal", "architect", "manager", "director"}},
			{Name: "mid", Terms: []string{"mid-level", "intermediate", "3-5 years", "4-6 years", "5-7 years"}},
			{Name: "junior", Terms: []string{"junior", "entry", "associate", "graduate", "0-2 years", "1-3 years"}},
		},
	}
}

func (c *Config) category(name string) (SkillCategory, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return SkillCategory{}, false
}

func (c *Config) categoryWeight(name string) float64 {
	if cat, ok := c.category(name); ok {
		return cat.Weight
	}
	return defaultCategoryWeight
}

// matchOrder lists every extraction bucket in the deterministic order used for
// cross-matching and missing-keyword analysis.
func (c *Config) matchOrder() []string {
	names := make([]string, 0, len(c.Categories)+3)
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return append(names, categoryMultiword, categoryQuantified, categoryGeneral)
}

// criticalBoostTerms get a +0.2 importance boost (capped at 1.0).
var criticalBoostTerms = map[string]bool{
	"python": true, "java": true, "javascript": true, "react": true,
	"aws": true, "docker": true, "kubernetes": true,
}

// impactVerbs signal measurable achievement in resume text.
var impactVerbs = []string{
	"achieved", "improved", "increased", "decreased", "reduced", "optimized",
	"implemented", "developed", "created", "designed", "built", "launched",
	"delivered", "managed", "led", "coordinated", "streamlined", "automated",
	"enhanced", "upgraded", "modernized", "scaled", "migrated", "integrated",
}

// stopwords filtered out of the general-frequency bucket. Includes a few
// resume-specific terms that carry no signal.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true, "they": true,
	"me": true, "him": true, "her": true, "us": true, "them": true, "my": true,
	"your": true, "his": true, "its": true, "our": true, "their": true,
	"am": true, "also": true, "very": true, "just": true, "so": true,
	"than": true, "too": true, "any": true, "some": true, "no": true,
	"not": true, "only": true, "own": true, "same": true, "now": true,
	"use": true, "work": true, "experience": true, "years": true, "year": true,
	"skills": true, "skill": true,
}
