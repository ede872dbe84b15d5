// Package scoring implements the numeric half of the analysis pipeline:
// text similarity, keyword extraction and suggestion generation. Everything
// here is a pure function of its inputs.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxFeatures caps the TF-IDF vocabulary to the highest-count terms across
// the two-document corpus.
const maxFeatures = 100

// neutralSimilarity is returned when neither text yields usable words.
const neutralSimilarity = 0.5

var (
	tokenRe    = regexp.MustCompile(`\b\w\w+\b`)
	longWordRe = regexp.MustCompile(`\b\w{4,}\b`)
)

// Similarity scores how close two texts are, in [0, 1].
//
// The primary path builds TF-IDF term vectors over the two-document corpus
// {a, b} (lowercased, English stop words removed, vocabulary capped to the
// 100 highest-count terms) and returns their cosine. When either text has no
// extractable terms left after stop-word removal the vectors degenerate, so
// instead of failing the function falls back to Jaccard overlap of the words
// with length >= 4, and to a fixed neutral 0.5 when even those are absent.
func Similarity(a, b string) float64 {
	countsA := termCounts(a)
	countsB := termCounts(b)

	// Precondition for the vector-space path: both documents must have at
	// least one weighted term.
	if len(countsA) == 0 || len(countsB) == 0 {
		return jaccardFallback(a, b)
	}

	vocab := topTerms(countsA, countsB, maxFeatures)

	vecA := tfidfVector(countsA, countsB, vocab)
	vecB := tfidfVector(countsB, countsA, vocab)

	dot, normA, normB := 0.0, 0.0, 0.0
	for i := range vocab {
		dot += vecA[i] * vecB[i]
		normA += vecA[i] * vecA[i]
		normB += vecB[i] * vecB[i]
	}
	if normA == 0 || normB == 0 {
		return jaccardFallback(a, b)
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, cos))
}

// termCounts tokenizes text into lowercased words of >= 2 characters and
// counts them, dropping stop words.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	return counts
}

// topTerms selects up to limit terms by combined corpus count, ties broken
// alphabetically so the result is deterministic.
func topTerms(a, b map[string]int, limit int) []string {
	union := make(map[string]int, len(a)+len(b))
	for t, c := range a {
		union[t] += c
	}
	for t, c := range b {
		union[t] += c
	}

	terms := make([]string, 0, len(union))
	for t := range union {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if union[terms[i]] != union[terms[j]] {
			return union[terms[i]] > union[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// tfidfVector builds the weighted vector of doc over the capped vocabulary.
// IDF is smoothed over the two-document corpus: ln((1+n)/(1+df)) + 1 with
// n = 2, so a term present in both documents weighs 1.0 and a term unique
// to one document weighs ln(1.5) + 1.
func tfidfVector(doc, other map[string]int, vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := float64(doc[term])
		if tf == 0 {
			continue
		}
		df := 1.0
		if other[term] > 0 {
			df = 2.0
		}
		idf := math.Log(3.0/(1.0+df)) + 1.0
		vec[i] = tf * idf
	}
	return vec
}

// jaccardFallback compares the sets of words with length >= 4 from each
// text. It keeps the scorer total: any pair of strings gets a number.
func jaccardFallback(a, b string) float64 {
	setA := longWordSet(a)
	setB := longWordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return neutralSimilarity
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return neutralSimilarity
	}
	return float64(intersection) / float64(union)
}

func longWordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range longWordRe.FindAllString(strings.ToLower(text), -1) {
		set[w] = struct{}{}
	}
	return set
}
