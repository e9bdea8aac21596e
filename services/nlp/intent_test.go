package nlp

import (
	"testing"

	"reservabot/models"
)

func TestResolveIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"reservar", "quero reservar a sala", models.IntentCreateBooking},
		{"agendar", "agendar para amanhã", models.IntentCreateBooking},
		{"quero um horário", "quero um horário na sexta", models.IntentCreateBooking},
		{"cancelar", "cancelar minha reserva", models.IntentCancelBooking},
		{"cancela variant", "cancela pra mim a sala", models.IntentCancelBooking},
		{"consultar", "consultar a agenda", models.IntentListAvailability},
		{"horários disponíveis", "horários disponíveis amanhã", models.IntentListAvailability},
		{"mudar", "mudar minha reserva", models.IntentRescheduleBooking},
		{"no keyword", "bom dia", models.IntentUnknown},
		{"empty", "", models.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveIntent(Normalize(tt.text)); got != tt.want {
				t.Errorf("resolveIntent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// The groups are checked in a fixed order and the first hit returns, so
// messages carrying keywords from several groups resolve deterministically.
func TestResolveIntentPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"reservation beats cancellation", "reservar ou cancelar", models.IntentCreateBooking},
		{"cancellation beats availability", "cancelar e ver horários", models.IntentCancelBooking},
		{"availability beats reschedule", "ver ou mudar", models.IntentListAvailability},
		// "remarcar" contains "marcar", so the reservation group claims it
		// before the reschedule group is ever consulted.
		{"remarcar resolves to create", "quero remarcar", models.IntentCreateBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveIntent(Normalize(tt.text)); got != tt.want {
				t.Errorf("resolveIntent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
