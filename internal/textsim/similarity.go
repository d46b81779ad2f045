package textsim

import (
	"regexp"
	"strings"
)

// DefaultShingleSize is the shingle length used for body comparison when
// the caller passes a non-positive n.
const DefaultShingleSize = 5

var markupRe = regexp.MustCompile(`<[^>]*>`)

// TitleSimilarity returns the Jaccard index of the token sets of two raw
// title strings. The result is in [0,1]; two empty titles score 0 rather
// than dividing by zero.
func TitleSimilarity(a, b string) float64 {
	return jaccard(tokenSet(Tokenize(a)), tokenSet(Tokenize(b)))
}

// BodySimilarity returns the Jaccard index over n-token shingle sets of
// two bodies. Markup tags are replaced with spaces before tokenizing so
// "<p>word</p>" compares as "word". If either body has fewer than n
// tokens the bodies are too short to compare and the similarity is 0.
//
// Shingles rather than plain token sets: two articles sharing common
// domain vocabulary would score high on bag-of-words overlap without any
// actual phrase reuse.
func BodySimilarity(a, b string, n int) float64 {
	if n <= 0 {
		n = DefaultShingleSize
	}
	ta := Tokenize(StripMarkup(a))
	tb := Tokenize(StripMarkup(b))
	if len(ta) < n || len(tb) < n {
		return 0
	}
	return jaccard(shingleSet(ta, n), shingleSet(tb, n))
}

// StripMarkup replaces <...> spans with a single space.
func StripMarkup(s string) string {
	return markupRe.ReplaceAllString(s, " ")
}

// shingleSet builds the set of contiguous n-token windows (stride 1).
func shingleSet(tokens []string, n int) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for i := 0; i+n <= len(tokens); i++ {
		set[strings.Join(tokens[i:i+n], " ")] = struct{}{}
	}
	return set
}

// jaccard computes |A ∩ B| / |A ∪ B|, flooring the union size at 1 so
// two empty sets score 0.
func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union < 1 {
		union = 1
	}
	return float64(inter) / float64(union)
}
