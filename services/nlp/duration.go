package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var durationRe = regexp.MustCompile(`por (\d+)\s*(hora|horas|h|minuto|minutos)`)

// extractDuration resolves "por 2 horas" / "por 90 minutos" phrasing into a
// minute count. ok is false when no duration phrase is present; the caller
// applies its own default.
func extractDuration(text string) (int, bool) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if strings.HasPrefix(m[2], "min") {
		return n, true
	}
	return n * 60, true
}
