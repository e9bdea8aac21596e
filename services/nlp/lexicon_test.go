package nlp

import "testing"

// Lexicon tables are ordered slices: on overlapping matches the earliest
// entry must win, independent of anything like map iteration order.
func TestResourceAliasOrderIsDeterministic(t *testing.T) {
	lex := DefaultLexicon()

	// "sala a" precedes "sala de gravação", so a text containing both
	// resolves to Sala A every time.
	text := Normalize("reservar a sala a ou a sala de gravação")
	for i := 0; i < 100; i++ {
		if got := extractResource(text, lex); got != "Sala A" {
			t.Fatalf("extractResource = %q, want %q", got, "Sala A")
		}
	}
}

func TestExtractResource(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		text string
		want string
	}{
		{"reservar a sala de gravação", "Estúdio Grande"},
		{"reservar a sala de ensaio", "Sala B"},
		{"reservar o estudio grande", "Estúdio Grande"},
		{"reservar amanhã", ""},
	}

	for _, tt := range tests {
		if got := extractResource(Normalize(tt.text), lex); got != tt.want {
			t.Errorf("extractResource(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestPeriodOrderFirstMatchWins(t *testing.T) {
	lex := DefaultLexicon()

	// "manhã" precedes "tarde" in the lexicon, so a text mentioning both
	// periods resolves to the morning window.
	start, end := extractPeriod(Normalize("de manhã ou de tarde"), lex)
	if start != "08:00" || end != "12:00" {
		t.Errorf("extractPeriod = (%q, %q), want (08:00, 12:00)", start, end)
	}
}

func TestWeekdayIndexLookup(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name string
		want int
	}{
		{"segunda", 0}, {"terça", 1}, {"terca", 1}, {"quarta", 2},
		{"quinta", 3}, {"sexta", 4}, {"sábado", 5}, {"sabado", 5}, {"domingo", 6},
	}
	for _, tt := range tests {
		got, ok := lex.weekdayIndex(tt.name)
		if !ok || got != tt.want {
			t.Errorf("weekdayIndex(%q) = (%d, %v), want (%d, true)", tt.name, got, ok, tt.want)
		}
	}

	if _, ok := lex.weekdayIndex("feira"); ok {
		t.Error("weekdayIndex should not match unknown words")
	}
}
