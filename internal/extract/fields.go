package extract

import (
	"regexp"
	"strings"
)

// Profile holds the structured fields pulled out of raw resume text.
type Profile struct {
	Name           string       `json:"name,omitempty"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Skills         []string     `json:"skills"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
}

// Education is one credential found in the education section.
type Education struct {
	Degree string `json:"degree"`
}

// Experience is one position found in the experience section.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// skillsDatabase groups known skills by domain. Matching is case-insensitive
// on word boundaries; the canonical casing here is what ends up in the
// profile.
var skillsDatabase = [][]string{
	{
		"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
		"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Shell", "PowerShell",
	},
	{
		"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express.js",
		"Django", "Flask", "Spring Boot", "ASP.NET", "Laravel", "Bootstrap",
		"Tailwind CSS", "TypeScript", "jQuery", "SASS",
	},
	{
		"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "SQL Server",
		"Redis", "Cassandra", "DynamoDB", "Neo4j", "Elasticsearch", "Firebase",
	},
	{
		"AWS", "Azure", "Google Cloud", "Heroku", "DigitalOcean",
	},
	{
		"Docker", "Kubernetes", "Jenkins", "Git", "GitHub", "GitLab",
		"Terraform", "Ansible", "Chef", "Puppet", "CircleCI",
	},
	{
		"Machine Learning", "Deep Learning", "Data Analysis", "Statistics",
		"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
		"Matplotlib", "Tableau", "Power BI", "Apache Spark", "Hadoop",
	},
	{
		"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic",
	},
	{
		"Leadership", "Communication", "Teamwork", "Problem Solving",
		"Critical Thinking", "Project Management", "Time Management",
		"Analytical Skills", "Creativity", "Adaptability", "Collaboration",
	},
}

var knownLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Russian", "Chinese", "Japanese", "Korean", "Arabic", "Hindi",
}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:bachelor|b\.?sc?\.?|btech)\b[^,\n.]*`),
	regexp.MustCompile(`(?i)\b(?:master|m\.?sc?\.?|mtech|mba|mfa)\b[^,\n.]*`),
	regexp.MustCompile(`(?i)\b(?:phd|ph\.?d\.?|doctorate|doctoral)\b[^,\n.]*`),
	regexp.MustCompile(`(?i)\b(?:associate|diploma)\b[^,\n.]*`),
}

var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:aws|amazon web services)\s+certified\s+[a-z ]+`),
	regexp.MustCompile(`(?i)(?:microsoft|google|oracle|cisco)\s+certified\s+[a-z ]+`),
	regexp.MustCompile(`(?i)certified\s+[a-z ]+`),
	regexp.MustCompile(`(?i)\b(?:pmp|cissp|cisa|cism|comptia)\b`),
}

var jobTitleIndicators = []string{
	"engineer", "developer", "manager", "analyst", "specialist",
	"coordinator", "director", "lead", "architect", "consultant",
}

var (
	fieldEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	fieldPhoneRe = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	nameLineRe   = regexp.MustCompile(`^[A-Za-z .]+$`)
)

// ParseFields extracts structured resume fields from raw text. All lists are
// deduplicated in first-occurrence order; fields that cannot be found are
// left empty rather than failing the parse.
func ParseFields(text string) Profile {
	p := Profile{
		Skills:         []string{},
		Education:      []Education{},
		Experience:     []Experience{},
		Certifications: []string{},
		Languages:      []string{},
	}
	if strings.TrimSpace(text) == "" {
		return p
	}

	p.Name = extractName(text)
	p.Email = fieldEmailRe.FindString(text)
	p.Phone = strings.TrimSpace(fieldPhoneRe.FindString(text))
	p.Skills = extractSkills(text)
	p.Education = extractEducation(text)
	p.Experience = extractExperience(text)
	p.Certifications = extractCertifications(text)
	p.Languages = extractLanguages(text)
	return p
}

// extractName takes the first short, letters-only line near the top of the
// document as the candidate's name.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if nameLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}

func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	skills := []string{}
	for _, group := range skillsDatabase {
		for _, skill := range group {
			if seen[skill] {
				continue
			}
			if containsWholeWord(lower, strings.ToLower(skill)) {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}
	return skills
}

// containsWholeWord reports whether term occurs in text bounded by
// non-alphanumeric characters. Terms like "c++" and "node.js" carry their own
// punctuation, so a plain \b regexp would misfire at their edges.
func containsWholeWord(text, term string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		leftOK := idx == 0 || !isWordChar(text[idx-1])
		rightOK := end == len(text) || !isWordChar(text[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

func extractEducation(text string) []Education {
	section := findSection(text, []string{"education", "academic", "qualification"})
	if section == "" {
		return []Education{}
	}
	seen := make(map[string]bool)
	out := []Education{}
	for _, re := range degreePatterns {
		for _, m := range re.FindAllString(section, -1) {
			degree := strings.TrimSpace(m)
			if degree == "" || seen[degree] {
				continue
			}
			seen[degree] = true
			out = append(out, Education{Degree: degree})
		}
	}
	return out
}

func extractExperience(text string) []Experience {
	section := findSection(text, []string{"experience", "work", "employment", "career"})
	if section == "" {
		return []Experience{}
	}

	out := []Experience{}
	var current *Experience
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case looksLikeJobTitle(line):
			if current != nil {
				current.Description = strings.TrimSpace(current.Description)
				out = append(out, *current)
			}
			current = &Experience{Title: line}
		case current != nil && current.Company == "":
			current.Company = line
		case current != nil:
			current.Description += line + " "
		}
	}
	if current != nil {
		current.Description = strings.TrimSpace(current.Description)
		out = append(out, *current)
	}
	return out
}

func extractCertifications(text string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, re := range certificationPatterns {
		for _, m := range re.FindAllString(text, -1) {
			cert := strings.TrimSpace(m)
			if cert == "" || seen[strings.ToLower(cert)] {
				continue
			}
			seen[strings.ToLower(cert)] = true
			out = append(out, cert)
		}
	}
	return out
}

func extractLanguages(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, lang := range knownLanguages {
		if containsWholeWord(lower, strings.ToLower(lang)) {
			out = append(out, lang)
		}
	}
	return out
}

var sectionHeaderTerms = []string{"experience", "education", "skills", "projects", "certifications"}

// findSection returns the block of text from the first line containing one of
// the keywords up to the next section header, or "" when no header matches.
func findSection(text string, keywords []string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if len(lower) >= 50 {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				start = i
				break
			}
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		lower := strings.ToLower(strings.TrimSpace(lines[i]))
		if lower == "" || len(lower) >= 50 {
			continue
		}
		for _, term := range sectionHeaderTerms {
			if strings.Contains(lower, term) {
				end = i
				break
			}
		}
		if end != len(lines) {
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

func looksLikeJobTitle(line string) bool {
	if line == "" || len(line) > 100 {
		return false
	}
	lower := strings.ToLower(line)
	for _, indicator := range jobTitleIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
