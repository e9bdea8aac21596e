package nlp

import (
	"time"

	"reservabot/models"
)

// Interpreter turns a free-form Portuguese booking message into a structured
// InterpretedRequest. It is a pure function of its input plus the immutable
// lexicon: no I/O, no shared mutable state, safe for concurrent use.
type Interpreter struct {
	lex Lexicon
	now func() time.Time
}

// NewInterpreter creates an interpreter over the given lexicon.
func NewInterpreter(lex Lexicon) *Interpreter {
	return NewInterpreterWithClock(lex, time.Now)
}

// NewInterpreterWithClock creates an interpreter with an injected clock, so
// relative dates ("amanhã", "sexta") resolve deterministically in tests.
func NewInterpreterWithClock(lex Lexicon, clock func() time.Time) *Interpreter {
	return &Interpreter{lex: lex, now: clock}
}

// Interpret extracts the intent and every slot it can find in text.
// Malformed or nonsensical input never fails: unresolved slots simply stay
// absent and unparseable literals are skipped.
func (i *Interpreter) Interpret(text string) models.InterpretedRequest {
	t := Normalize(text)
	today := dateOnly(i.now())

	req := models.InterpretedRequest{
		RawText: text,
		Intent:  resolveIntent(t),
	}

	req.Dates = i.extractDates(t, today)
	if len(req.Dates) > 0 {
		req.PrimaryDate = req.Dates[0]
	}

	req.Times = extractTimes(t, i.lex)
	// A single extracted time is unambiguous; anything else leaves the
	// primary time unset.
	if len(req.Times) == 1 {
		req.PrimaryTime = req.Times[0]
	}

	// An explicit interval wins over a named period. Each bound falls back
	// independently, mirroring the layered extraction: the interval
	// extractor fills both bounds or neither, so the bounds never actually
	// mix sources.
	intervalStart, intervalEnd := extractInterval(t, i.lex)
	periodStart, periodEnd := extractPeriod(t, i.lex)
	req.IntervalStart = firstNonEmpty(intervalStart, periodStart)
	req.IntervalEnd = firstNonEmpty(intervalEnd, periodEnd)

	if minutes, ok := extractDuration(t); ok {
		req.DurationMinutes = minutes
	}

	req.ResourceName = extractResource(t, i.lex)

	return req
}

// dateOnly truncates a moment to its calendar date at midnight UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
