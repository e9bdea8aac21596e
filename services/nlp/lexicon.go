package nlp

// Lexicon holds the static vocabulary the extractors match against.
// Every table is an ordered slice, not a map: on overlapping matches the
// first entry wins, and that order is part of the interpreter's contract.
// A Lexicon is immutable after construction and safe for concurrent use.
type Lexicon struct {
	Resources    []ResourceAlias
	Weekdays     []WeekdayName
	Periods      []PeriodEntry
	SpecialHours []SpecialHour
}

// ResourceAlias maps a colloquial phrase to the canonical resource name.
type ResourceAlias struct {
	Alias     string
	Canonical string
}

// WeekdayName maps a weekday word to its index, 0 = segunda .. 6 = domingo.
type WeekdayName struct {
	Name string
	Day  int
}

// PeriodEntry maps a named period of day to a fixed clock-time range.
type PeriodEntry struct {
	Name  string
	Start string
	End   string
}

// SpecialHour maps a named hour to its clock time.
type SpecialHour struct {
	Name string
	Time string
}

// DefaultLexicon returns the built-in Portuguese vocabulary.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Resources: []ResourceAlias{
			{"sala a", "Sala A"},
			{"sala b", "Sala B"},
			{"estudio grande", "Estúdio Grande"},
			{"estudio pequeno", "Estúdio Pequeno"},
			{"sala de gravação", "Estúdio Grande"},
			{"sala de ensaio", "Sala B"},
		},
		Weekdays: []WeekdayName{
			{"segunda", 0},
			{"terça", 1}, {"terca", 1},
			{"quarta", 2},
			{"quinta", 3},
			{"sexta", 4},
			{"sábado", 5}, {"sabado", 5},
			{"domingo", 6},
		},
		Periods: []PeriodEntry{
			{"manhã", "08:00", "12:00"},
			{"manha", "08:00", "12:00"},
			{"tarde", "13:00", "18:00"},
			{"noite", "18:00", "22:00"},
			{"madrugada", "00:00", "05:00"},
			{"horário comercial", "08:00", "18:00"},
			{"horario comercial", "08:00", "18:00"},
		},
		SpecialHours: []SpecialHour{
			{"meio-dia", "12:00"},
			{"meio dia", "12:00"},
			{"meia-noite", "00:00"},
			{"meia noite", "00:00"},
		},
	}
}

// weekdayIndex looks a weekday word up, 0 = segunda .. 6 = domingo.
func (l Lexicon) weekdayIndex(name string) (int, bool) {
	for _, w := range l.Weekdays {
		if w.Name == name {
			return w.Day, true
		}
	}
	return 0, false
}

// specialHour looks a named hour up.
func (l Lexicon) specialHour(name string) (string, bool) {
	for _, h := range l.SpecialHours {
		if h.Name == name {
			return h.Time, true
		}
	}
	return "", false
}
