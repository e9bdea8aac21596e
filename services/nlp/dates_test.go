package nlp

import (
	"testing"
	"time"
)

// All cases resolve against Wednesday, 2025-03-12 (see fixedClock).
func TestExtractDates(t *testing.T) {
	it := testInterpreter()

	tests := []struct {
		name  string
		text  string
		wants []time.Time
	}{
		{
			name:  "hoje",
			text:  "reservar hoje",
			wants: []time.Time{date(2025, 3, 12)},
		},
		{
			name:  "amanhã",
			text:  "reservar amanhã",
			wants: []time.Time{date(2025, 3, 13)},
		},
		{
			name: "depois de amanhã also carries amanhã",
			text: "reservar depois de amanhã",
			// "depois de amanhã" contains "amanhã", so both rules fire.
			wants: []time.Time{date(2025, 3, 13), date(2025, 3, 14)},
		},
		{
			name:  "daqui N dias",
			text:  "reservar daqui 3 dias",
			wants: []time.Time{date(2025, 3, 15)},
		},
		{
			name:  "bare weekday ahead in the week",
			text:  "reservar sexta",
			wants: []time.Time{date(2025, 3, 14)},
		},
		{
			name: "bare weekday may resolve to today",
			text: "reservar quarta",
			// today is Wednesday; the bare form allows a same-day match
			wants: []time.Time{date(2025, 3, 12)},
		},
		{
			name: "próxima weekday never resolves to today",
			text: "reservar próxima quarta",
			// the qualified form jumps a full week; the bare mention of
			// the same weekday still contributes today
			wants: []time.Time{date(2025, 3, 19), date(2025, 3, 12)},
		},
		{
			name:  "multiple weekdays",
			text:  "reservar segunda e quinta",
			wants: []time.Time{date(2025, 3, 17), date(2025, 3, 13)},
		},
		{
			name:  "literal date day-first",
			text:  "reservar 10/02/2026",
			wants: []time.Time{date(2026, 2, 10)},
		},
		{
			name:  "literal date two-digit year",
			text:  "reservar 05/04/26",
			wants: []time.Time{date(2026, 4, 5)},
		},
		{
			name:  "invalid literal date is skipped",
			text:  "reservar 31/02/2026 e amanhã",
			wants: []time.Time{date(2025, 3, 13)},
		},
		{
			name:  "duplicates removed keeping first-seen order",
			text:  "reservar amanhã ou daqui 1 dias",
			wants: []time.Time{date(2025, 3, 13)},
		},
		{
			name:  "no dates",
			text:  "reservar a sala a",
			wants: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := it.extractDates(Normalize(tt.text), date(2025, 3, 12))
			if len(got) != len(tt.wants) {
				t.Fatalf("extractDates(%q) = %v, want %v", tt.text, got, tt.wants)
			}
			for i := range got {
				if !got[i].Equal(tt.wants[i]) {
					t.Errorf("extractDates(%q)[%d] = %v, want %v", tt.text, i, got[i], tt.wants[i])
				}
			}
		})
	}
}

func TestWeekdayIndexOf(t *testing.T) {
	// 2025-03-10 is a Monday.
	for i := 0; i < 7; i++ {
		got := weekdayIndexOf(date(2025, 3, 10+i))
		if got != i {
			t.Errorf("weekdayIndexOf(+%d days) = %d, want %d", i, got, i)
		}
	}
}
