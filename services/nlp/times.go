package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	colonTimeRe = regexp.MustCompile(`\d{1,2}:\d{2}`)
	bareHourRe  = regexp.MustCompile(`\b(\d{1,2})h\b`)
	dayPeriodRe = regexp.MustCompile(`(\d{1,2}) (da tarde|da noite|da manhã|de manhã|de tarde)`)
)

// extractTimes collects every clock time in normalized text, in a fixed
// order: explicit HH:MM forms, bare "14h" shorthands, one descriptive
// "<N> da tarde" phrase, then special named hours. All matches are kept.
func extractTimes(text string, lex Lexicon) []string {
	var times []string

	// 14:00 / 07:30
	times = append(times, colonTimeRe.FindAllString(text, -1)...)

	// 14h / 7h, zero-padded to keep the HH:MM shape
	for _, m := range bareHourRe.FindAllStringSubmatch(text, -1) {
		if h, err := strconv.Atoi(m[1]); err == nil {
			times = append(times, fmt.Sprintf("%02d:00", h))
		}
	}

	// "2 da tarde", "7 da noite"
	if m := dayPeriodRe.FindStringSubmatch(text); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			period := m[2]
			if strings.Contains(period, "tarde") && h < 12 {
				h += 12
			}
			if strings.Contains(period, "noite") && h < 12 {
				h += 12
			}
			times = append(times, fmt.Sprintf("%02d:00", h))
		}
	}

	// meio-dia, meia-noite
	for _, sh := range lex.SpecialHours {
		if strings.Contains(text, sh.Name) {
			times = append(times, sh.Time)
		}
	}

	return times
}
