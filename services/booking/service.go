package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reservabot/models"
)

const dateLayout = "2006-01-02"

// HandleMessage interprets one inbound message and executes the intent.
// The returned WorkflowResult describes what happened; the user-facing
// reply has already been sent through the notifier.
func (s *DefaultWorkflowService) HandleMessage(ctx context.Context, phone, text string) (*models.WorkflowResult, error) {
	customer, err := s.Customers.GetOrCreateByPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	parsed := s.Interpreter.Interpret(text)
	merged := s.mergePending(ctx, phone, parsed)

	s.Logger.Debug("interpreted message",
		zap.String("phone", phone),
		zap.String("intent", string(merged.Intent)),
		zap.Strings("times", merged.Times),
		zap.String("resource", merged.ResourceName),
	)

	switch merged.Intent {
	case models.IntentCreateBooking:
		return s.createBooking(ctx, customer, merged, phone)
	case models.IntentCancelBooking:
		return s.cancelBooking(ctx, customer, merged, phone)
	case models.IntentListAvailability:
		return s.listAvailability(ctx, merged, phone)
	case models.IntentRescheduleBooking:
		s.reply(ctx, phone, "Para remarcar, cancele a reserva atual e crie uma nova (Ex: 'cancelar dia 10 às 17h').")
		return &models.WorkflowResult{Status: "reschedule_hint"}, nil
	default:
		s.reply(ctx, phone, replyWelcome())
		return &models.WorkflowResult{Status: "unknown_intent"}, nil
	}
}

// mergePending folds the stored pending interpretation into the fresh one,
// so "Reservar a Sala A" followed by "amanhã às 15h" completes the booking.
func (s *DefaultWorkflowService) mergePending(ctx context.Context, phone string, parsed models.InterpretedRequest) models.InterpretedRequest {
	if s.State == nil {
		return parsed
	}
	prev, err := s.State.Load(ctx, phone)
	if err != nil {
		s.Logger.Warn("failed to load conversation state", zap.Error(err))
		return parsed
	}
	if prev == nil {
		return parsed
	}

	if parsed.Intent == models.IntentUnknown {
		parsed.Intent = prev.Intent
	}
	if !parsed.HasDate() && prev.HasDate() {
		parsed.Dates = prev.Dates
		parsed.PrimaryDate = prev.PrimaryDate
	}
	if !parsed.HasTime() && prev.HasTime() {
		parsed.Times = prev.Times
		parsed.PrimaryTime = prev.PrimaryTime
	}
	if parsed.ResourceName == "" {
		parsed.ResourceName = prev.ResourceName
	}
	if parsed.DurationMinutes == 0 {
		parsed.DurationMinutes = prev.DurationMinutes
	}
	return parsed
}

func (s *DefaultWorkflowService) savePending(ctx context.Context, phone string, req models.InterpretedRequest) {
	if s.State == nil {
		return
	}
	if err := s.State.Save(ctx, phone, &req); err != nil {
		s.Logger.Warn("failed to save conversation state", zap.Error(err))
	}
}

func (s *DefaultWorkflowService) clearPending(ctx context.Context, phone string) {
	if s.State == nil {
		return
	}
	if err := s.State.Clear(ctx, phone); err != nil {
		s.Logger.Warn("failed to clear conversation state", zap.Error(err))
	}
}

func (s *DefaultWorkflowService) createBooking(ctx context.Context, customer *models.Customer, req models.InterpretedRequest, phone string) (*models.WorkflowResult, error) {
	// Resolve the resource: explicit canonical name, or the first
	// registered resource as the house default.
	var resource *models.Resource
	var err error
	if req.ResourceName != "" {
		resource, err = s.Resources.GetByName(req.ResourceName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up resource: %w", err)
		}
		if resource == nil {
			s.reply(ctx, phone, replyResourceNotFound(req.ResourceName))
			return &models.WorkflowResult{Status: "resource_not_found"}, nil
		}
	} else {
		resource, err = s.Resources.GetFirst()
		if err != nil {
			return nil, fmt.Errorf("failed to look up default resource: %w", err)
		}
		if resource == nil {
			s.reply(ctx, phone, replyNoResources())
			return &models.WorkflowResult{Status: "no_resources"}, nil
		}
	}

	if !req.HasDate() || !req.HasTime() {
		s.savePending(ctx, phone, req)
		s.reply(ctx, phone, replyMissingBookingInfo(resource.Name))
		return &models.WorkflowResult{Status: "missing_info"}, nil
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = s.defaultDuration()
	}

	startDT, err := combineDateTime(req.PrimaryDate, req.PrimaryTime)
	if err != nil {
		s.reply(ctx, phone, replyBadDateTime())
		return &models.WorkflowResult{Status: "bad_date_time"}, nil
	}
	endDT := startDT.Add(time.Duration(duration) * time.Minute)

	day := req.PrimaryDate.Format(dateLayout)
	start := startDT.Format("15:04")
	end := endDT.Format("15:04")
	dayBR := req.PrimaryDate.Format("02/01")

	conflict, err := s.Bookings.HasConflict(resource.ID, day, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if conflict {
		s.reply(ctx, phone, replyBusy(resource.Name, start, end, dayBR))
		return &models.WorkflowResult{Status: "busy"}, nil
	}

	if s.Calendar != nil {
		free, err := s.Calendar.CheckAvailability(ctx, startDT, endDT)
		if err != nil {
			s.Logger.Warn("calendar availability check failed", zap.Error(err))
		} else if !free {
			s.reply(ctx, phone, replyBusy(resource.Name, start, end, dayBR))
			return &models.WorkflowResult{Status: "calendar_busy"}, nil
		}
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		ResourceID:   resource.ID,
		ResourceName: resource.Name,
		Date:         day,
		StartTime:    start,
		EndTime:      end,
		Status:       models.BookingStatusConfirmed,
		CreatedAt:    time.Now(),
	}

	if s.Calendar != nil {
		summary := fmt.Sprintf("Reserva %s — %s", resource.Name, customer.Phone)
		eventID, err := s.Calendar.CreateEvent(ctx, summary, "", startDT, endDT)
		if err != nil {
			s.Logger.Warn("failed to mirror booking to calendar", zap.Error(err))
		} else {
			booking.GoogleEventID = eventID
		}
	}

	if err := s.Bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking, phone); err != nil {
			s.Logger.Warn("failed to schedule reminder", zap.Error(err))
		}
	}

	s.clearPending(ctx, phone)
	s.reply(ctx, phone, replyConfirmed(resource.Name, dayBR, start, end, duration))
	return &models.WorkflowResult{Status: "confirmed", BookingID: booking.ID}, nil
}

func (s *DefaultWorkflowService) cancelBooking(ctx context.Context, customer *models.Customer, req models.InterpretedRequest, phone string) (*models.WorkflowResult, error) {
	if !req.HasDate() || !req.HasTime() {
		s.savePending(ctx, phone, req)
		s.reply(ctx, phone, replyMissingCancelInfo())
		return &models.WorkflowResult{Status: "missing_info"}, nil
	}

	startDT, err := combineDateTime(req.PrimaryDate, req.PrimaryTime)
	if err != nil {
		s.reply(ctx, phone, "❌ Data ou horário inválido para o cancelamento.")
		return &models.WorkflowResult{Status: "bad_date_time"}, nil
	}

	day := req.PrimaryDate.Format(dateLayout)
	start := startDT.Format("15:04")

	booking, err := s.Bookings.FindConfirmed(customer.ID, day, start)
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	if booking == nil {
		s.reply(ctx, phone, replyBookingNotFound())
		return &models.WorkflowResult{Status: "not_found"}, nil
	}

	if err := s.Bookings.SetStatus(booking.ID, models.BookingStatusCanceled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if s.Calendar != nil && booking.GoogleEventID != "" {
		if err := s.Calendar.DeleteEvent(ctx, booking.GoogleEventID); err != nil {
			s.Logger.Warn("failed to remove mirrored event", zap.Error(err))
		}
	}

	s.clearPending(ctx, phone)
	s.reply(ctx, phone, replyCanceled(req.PrimaryDate.Format("02/01"), start))
	return &models.WorkflowResult{Status: "canceled", BookingID: booking.ID}, nil
}

func (s *DefaultWorkflowService) listAvailability(ctx context.Context, req models.InterpretedRequest, phone string) (*models.WorkflowResult, error) {
	if !req.HasDate() {
		s.reply(ctx, phone, replyMissingAvailabilityDate())
		return &models.WorkflowResult{Status: "missing_date"}, nil
	}

	day := req.PrimaryDate.Format(dateLayout)
	dayBR := req.PrimaryDate.Format("02/01")

	bookings, err := s.Bookings.ListConfirmedByDate(day)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var msg string
	if len(bookings) == 0 {
		msg = replyAllFree(dayBR)
	} else {
		msg = busySlotsMessage(dayBR, bookings)
	}

	s.reply(ctx, phone, msg)
	return &models.WorkflowResult{Status: "availability", Date: day}, nil
}

// busySlotsMessage groups a day's bookings per resource. The repository
// returns them ordered by resource name then start time, so the grouping
// only needs to track boundaries.
func busySlotsMessage(dayBR string, bookings []models.Booking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗓️ Horários Ocupados em %s:\n\n", dayBR)

	current := ""
	var slots []string
	flush := func() {
		if current != "" {
			fmt.Fprintf(&b, "**%s**: %s\n", current, strings.Join(slots, ", "))
		}
	}
	for _, bk := range bookings {
		if bk.ResourceName != current {
			flush()
			current = bk.ResourceName
			slots = slots[:0]
		}
		slots = append(slots, fmt.Sprintf("%s - %s", bk.StartTime, bk.EndTime))
	}
	flush()

	b.WriteString("\n*Os demais horários e salas estão livres.*")
	return b.String()
}

// reply sends a message back over the gateway; delivery failures are logged
// and do not abort the workflow.
func (s *DefaultWorkflowService) reply(ctx context.Context, phone, body string) {
	if err := s.Notifier.SendWhatsApp(ctx, phone, body); err != nil {
		s.Logger.Error("failed to send reply", zap.String("phone", phone), zap.Error(err))
	}
}

func (s *DefaultWorkflowService) defaultDuration() int {
	if s.DefaultDurationMinutes > 0 {
		return s.DefaultDurationMinutes
	}
	return 60
}

// combineDateTime joins a calendar date with an "HH:MM" clock string.
func combineDateTime(date time.Time, clock string) (time.Time, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("malformed time %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, fmt.Errorf("malformed hour in %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("malformed minutes in %q", clock)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}
