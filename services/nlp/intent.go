package nlp

import (
	"strings"

	"reservabot/models"
)

// intentGroup is one keyword group and the intent it resolves to.
type intentGroup struct {
	intent   models.Intent
	keywords []string
}

// intentGroups is evaluated top to bottom and the first hit wins, so a
// message carrying both a reservation verb and a cancellation verb resolves
// to CreateBooking. The order is fixed; changing it changes behavior.
var intentGroups = []intentGroup{
	{models.IntentCreateBooking, []string{"reservar", "agendar", "marcar", "quero um horário", "quero um horario"}},
	{models.IntentCancelBooking, []string{"cancelar", "cancela"}},
	{models.IntentListAvailability, []string{"ver", "consultar", "horários disponíveis", "horarios disponiveis"}},
	{models.IntentRescheduleBooking, []string{"mudar", "remarcar"}},
}

// resolveIntent classifies normalized text into exactly one intent.
func resolveIntent(text string) models.Intent {
	for _, g := range intentGroups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.intent
			}
		}
	}
	return models.IntentUnknown
}
