package booking

import "fmt"

// User-facing replies, pt-BR like the rest of the conversation.

func replyWelcome() string {
	return "🤖 Olá! Sou o bot de reservas do Estúdio. Posso agendar, cancelar ou consultar a disponibilidade.\n\n*Diga 'Reservar Sala A amanhã às 16h' ou 'Ver horários disponíveis hoje'.*"
}

func replyNoResources() string {
	return "🚫 Não há salas cadastradas para reserva. Fale com um administrador."
}

func replyResourceNotFound(name string) string {
	return fmt.Sprintf("🚫 Não encontrei a sala '%s'. Por favor, verifique o nome e tente novamente.", name)
}

func replyMissingBookingInfo(resourceName string) string {
	return fmt.Sprintf("Para reservar a *%s*, especifique a **data e o horário** (Ex: 'reservar amanhã às 15:00').", resourceName)
}

func replyBadDateTime() string {
	return "❌ Não consegui entender a data ou o horário. Tente novamente no formato dd/mm/aaaa hh:mm."
}

func replyBusy(resourceName, start, end, day string) string {
	return fmt.Sprintf("🚫 Desculpe, a sala **%s** está reservada das %s às %s em %s. Consulte a disponibilidade.",
		resourceName, start, end, day)
}

func replyConfirmed(resourceName, day, start, end string, durationMinutes int) string {
	return fmt.Sprintf("✅ Reserva **Confirmada** na sala **%s** para %s:\nHorário: *%s às %s* (%d minutos).\nObrigado por reservar!",
		resourceName, day, start, end, durationMinutes)
}

func replyMissingCancelInfo() string {
	return "Para cancelar, preciso da **data e horário** da reserva (Ex: 'cancelar dia 10 às 17h')."
}

func replyCanceled(day, start string) string {
	return fmt.Sprintf("🗑️ Reserva cancelada com sucesso para %s às %s.", day, start)
}

func replyBookingNotFound() string {
	return "Não encontrei nenhuma reserva **ativa** para você nesta data e horário."
}

func replyMissingAvailabilityDate() string {
	return "Para consultar a agenda, preciso da data (Ex: 'horários disponíveis amanhã')."
}

func replyAllFree(day string) string {
	return fmt.Sprintf("🎉 Ótima notícia! Não há reservas para %s. Todas as salas estão **totalmente disponíveis**!", day)
}
