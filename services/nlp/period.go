package nlp

import "strings"

// extractPeriod matches a named period of day ("manhã", "tarde", ...)
// against the lexicon. The first entry found by substring containment wins;
// empty strings mean no period was mentioned.
func extractPeriod(text string, lex Lexicon) (string, string) {
	for _, p := range lex.Periods {
		if strings.Contains(text, p.Name) {
			return p.Start, p.End
		}
	}
	return "", ""
}
