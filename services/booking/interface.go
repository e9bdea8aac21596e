package booking

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "reservabot/database/repository/booking"
	customerRepo "reservabot/database/repository/customer"
	resourceRepo "reservabot/database/repository/resource"
	"reservabot/models"
	"reservabot/services/calendar"
	"reservabot/services/nlp"
	"reservabot/services/notification"
)

// WorkflowService drives the conversation: it interprets an inbound message
// and executes the booking action it asks for, replying over the gateway.
type WorkflowService interface {
	HandleMessage(ctx context.Context, phone, text string) (*models.WorkflowResult, error)
}

// ReminderScheduler enqueues a reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking, phone string) error
}

// DefaultWorkflowService implements WorkflowService.
type DefaultWorkflowService struct {
	Interpreter *nlp.Interpreter
	Customers   customerRepo.CustomerRepository
	Resources   resourceRepo.ResourceRepository
	Bookings    bookingRepo.BookingRepository
	Notifier    notification.NotificationService
	Calendar    calendar.CalendarService
	Reminders   ReminderScheduler // optional
	State       ConversationStore // optional
	Logger      *zap.Logger

	// DefaultDurationMinutes applies when the message carries no duration
	// phrase; 0 falls back to 60.
	DefaultDurationMinutes int
}
