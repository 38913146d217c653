// Package textutil provides text normalization and tokenization shared by
// every stage of the matching pipeline. Resume text and job-description text
// must pass through the same normalization so downstream comparisons are on a
// consistent basis.
package textutil

import (
	"regexp"
	"strings"
)

var (
	horizontalWhitespaceRe = regexp.MustCompile(`[ \t]+`)
	excessiveNewlinesRe    = regexp.MustCompile(`\n{3,}`)
	tokenNoiseRe           = regexp.MustCompile(`[^a-z0-9+\-/. ]+`)
)

// Normalize canonicalizes raw text: non-breaking spaces become ordinary
// spaces, runs of horizontal whitespace collapse to one space, three or more
// consecutive newlines collapse to exactly two, and leading/trailing
// whitespace is trimmed. Pure function; empty input yields empty output.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = horizontalWhitespaceRe.ReplaceAllString(text, " ")
	text = excessiveNewlinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Tokenize produces the bag of tokens used for keyword-overlap scoring:
// lowercase the text, replace every character outside [a-z0-9+-/. ] with a
// space, split on whitespace, and drop tokens of length <= 1. It is not used
// for skill extraction, which matches against the taxonomy directly.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = tokenNoiseRe.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) > 1 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TokenSet returns the distinct tokens of text as a set.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}
