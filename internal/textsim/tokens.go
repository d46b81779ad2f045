// Package textsim provides lexical similarity scoring for short titles
// and longer article bodies.
package textsim

import "strings"

// Tokenize normalizes free text into lowercase word tokens. Characters
// outside {a-z, 0-9, whitespace, hyphen} are dropped, whitespace runs are
// collapsed, and the result is split on single spaces. Empty input yields
// an empty slice.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// tokenSet collects tokens into a set for Jaccard scoring.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
