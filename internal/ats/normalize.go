package ats

import (
	"regexp"
	"strings"
)

var abbreviations = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\bn\.?js\b`), "nodejs"},
	{regexp.MustCompile(`(^|\s)c\+\+`), "${1}cpp"},
	{regexp.MustCompile(`(^|\s)c#`), "${1}csharp"},
	{regexp.MustCompile(`(^|\s)\.net\b`), "${1}dotnet"},
	{regexp.MustCompile(`\bai/ml\b`), "artificial intelligence machine learning"},
	{regexp.MustCompile(`\bml/ai\b`), "machine learning artificial intelligence"},
	{regexp.MustCompile(`\bui/ux\b`), "user interface user experience"},
	{regexp.MustCompile(`\bci/cd\b`), "continuous integration continuous deployment"},
}

// Keeps "%", "$", "+" and "#" so quantified achievements ("40% growth",
// "$2m budget", "5+ years") survive normalization.
var nonWordChars = regexp.MustCompile(`[^a-z0-9\s\-./%$+#]`)

// NormalizeText lowercases, expands common abbreviations, strips punctuation
// noise (keeping "-", ".", "/") and collapses whitespace. Idempotent:
// normalizing already-normalized text is a no-op.
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	for _, abbr := range abbreviations {
		text = abbr.re.ReplaceAllString(text, abbr.repl)
	}
	text = nonWordChars.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
