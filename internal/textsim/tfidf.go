package textsim

import (
	"math"
	"strings"
)

// maxVocabulary bounds the term vocabulary per comparison, keeping the cost of
// adversarially large inputs linear in text length.
const maxVocabulary = 1000

// CosineSimilarity computes TF-IDF cosine similarity between exactly two
// documents and returns a value in [0,1]. The term model is built fresh from
// the two texts on every call; nothing is shared between invocations. A
// degenerate vocabulary (both texts empty or all stopwords) yields 0.
func CosineSimilarity(docA, docB string) float64 {
	tokensA := tokenize(docA)
	tokensB := tokenize(docB)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	vocab := buildVocabulary(tokensA, tokensB)
	if len(vocab) == 0 {
		return 0
	}

	vecA := vectorize(tokensA, tokensB, vocab)
	vecB := vectorize(tokensB, tokensA, vocab)

	return cosine(vecA, vecB)
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || englishStopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '+' || r == '#' || r == '.' || r == '-':
		// keeps terms like c++, c#, node.js intact
		return true
	}
	return false
}

// buildVocabulary collects terms in first-seen order, capped at maxVocabulary.
// Deterministic ordering keeps repeated calls bit-identical.
func buildVocabulary(tokensA, tokensB []string) []string {
	seen := make(map[string]bool, len(tokensA)+len(tokensB))
	vocab := make([]string, 0, len(tokensA)+len(tokensB))
	for _, tok := range tokensA {
		if !seen[tok] {
			seen[tok] = true
			vocab = append(vocab, tok)
		}
		if len(vocab) >= maxVocabulary {
			return vocab
		}
	}
	for _, tok := range tokensB {
		if !seen[tok] {
			seen[tok] = true
			vocab = append(vocab, tok)
		}
		if len(vocab) >= maxVocabulary {
			return vocab
		}
	}
	return vocab
}

// vectorize builds the TF-IDF vector for doc against the two-document corpus
// {doc, other}. IDF uses the smoothed form ln((1+N)/(1+df))+1 over N=2 docs.
func vectorize(doc, other []string, vocab []string) []float64 {
	counts := termCounts(doc)
	otherCounts := termCounts(other)

	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := float64(counts[term]) / float64(len(doc))
		df := 0
		if counts[term] > 0 {
			df++
		}
		if otherCounts[term] > 0 {
			df++
		}
		idf := math.Log(float64(1+2)/float64(1+df)) + 1
		vec[i] = tf * idf
	}
	return vec
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
