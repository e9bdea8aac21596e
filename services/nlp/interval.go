package nlp

import (
	"regexp"
	"strings"
)

// The opener must start a word of its own: `\b` is ASCII-only in RE2, so it
// would still let the "do" suffix of "período" open a match. Requiring
// start-of-text or whitespace before it does not.
var intervalRe = regexp.MustCompile(`(?:^|\s)(entre|das|do)\s+(\d{1,2}[:h]?\d{0,2}|\w+)\s*(às|as|a)\b\s*(\d{1,2}[:h]?\d{0,2}|\w+)`)

// extractInterval resolves an explicit "entre X às Y" phrase into a
// normalized (start, end) pair. Empty strings mean no interval was given,
// which is not an error: the caller then falls back to the period extractor.
func extractInterval(text string, lex Lexicon) (string, string) {
	m := intervalRe.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return normalizeBound(m[2], lex), normalizeBound(m[4], lex)
}

// normalizeBound turns one interval bound into "HH:MM". Named hours map
// through the lexicon; otherwise "h" becomes ":" and an hour-only bound
// gets ":00" appended.
func normalizeBound(h string, lex Lexicon) string {
	if t, ok := lex.specialHour(h); ok {
		return t
	}
	h = strings.ReplaceAll(h, "h", ":")
	if !strings.Contains(h, ":") {
		return h + ":00"
	}
	return h
}
