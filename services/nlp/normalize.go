package nlp

import "strings"

// Normalize lower-cases and trims an utterance. All extractors operate on
// normalized text; the raw input is kept aside untouched.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
