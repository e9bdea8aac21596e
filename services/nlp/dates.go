package nlp

import (
	"regexp"
	"strconv"
	"time"
)

var (
	inDaysRe      = regexp.MustCompile(`daqui (\d+) dias`)
	nextWeekdayRe = regexp.MustCompile(`(próxima|proxima|este|essa) ([\p{L}]+)`)
	weekdayRe     = regexp.MustCompile(`(segunda|terça|terca|quarta|quinta|sexta|sábado|sabado|domingo)`)
	literalDateRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
)

// literalDateLayouts accept day-first dates with 4- or 2-digit years.
var literalDateLayouts = []string{"2/1/2006", "2/1/06"}

// extractDates resolves every date expression in normalized text against the
// given "today", in a fixed order, then de-duplicates preserving first-seen
// order. Dates are midnight UTC values.
func (i *Interpreter) extractDates(text string, today time.Time) []time.Time {
	var dates []time.Time

	if containsAny(text, "hoje") {
		dates = append(dates, today)
	}
	// "depois de amanhã" contains "amanhã", so a day-after-tomorrow message
	// also yields tomorrow; de-duplication keeps both, matching the layered
	// keyword checks.
	if containsAny(text, "amanhã", "amanha") {
		dates = append(dates, today.AddDate(0, 0, 1))
	}
	if containsAny(text, "depois de amanhã", "depois de amanha") {
		dates = append(dates, today.AddDate(0, 0, 2))
	}

	// "daqui N dias"
	if m := inDaysRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			dates = append(dates, today.AddDate(0, 0, n))
		}
	}

	// "próxima/este/essa <weekday>": never resolves to today; a same-day
	// match is pushed a full week forward.
	if m := nextWeekdayRe.FindStringSubmatch(text); m != nil {
		if target, ok := i.lex.weekdayIndex(m[2]); ok {
			add := (target - weekdayIndexOf(today) + 7) % 7
			if add == 0 {
				add = 7
			}
			dates = append(dates, today.AddDate(0, 0, add))
		}
	}

	// Bare weekday mentions, each resolved to its next occurrence. Unlike
	// the "próxima" form above, this may resolve to today itself.
	for _, m := range weekdayRe.FindAllString(text, -1) {
		if target, ok := i.lex.weekdayIndex(m); ok {
			add := (target - weekdayIndexOf(today) + 7) % 7
			dates = append(dates, today.AddDate(0, 0, add))
		}
	}

	// Literal dates like 10/02/2025, day-first. Unparseable literals
	// contribute nothing.
	for _, m := range literalDateRe.FindAllString(text, -1) {
		if d, ok := parseLiteralDate(m); ok {
			dates = append(dates, d)
		}
	}

	return dedupDates(dates)
}

// weekdayIndexOf converts time.Weekday to the lexicon's 0=segunda scheme.
func weekdayIndexOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// parseLiteralDate parses a day/month[/year] literal into a midnight UTC date.
func parseLiteralDate(s string) (time.Time, bool) {
	for _, layout := range literalDateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// dedupDates removes duplicate calendar dates keeping first-seen order.
func dedupDates(dates []time.Time) []time.Time {
	seen := make(map[string]bool, len(dates))
	out := dates[:0]
	for _, d := range dates {
		key := d.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}
