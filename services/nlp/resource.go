package nlp

import "strings"

// extractResource resolves a resource-alias phrase into the canonical
// resource name. Aliases are checked in lexicon order and the first one
// contained in the text wins; empty string means no resource was mentioned.
func extractResource(text string, lex Lexicon) string {
	for _, r := range lex.Resources {
		if strings.Contains(text, r.Alias) {
			return r.Canonical
		}
	}
	return ""
}
