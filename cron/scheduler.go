package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"reservabot/config"
	"reservabot/models"
)

const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues booking reminders for later delivery.
type ReminderScheduler interface {
	// ScheduleBookingReminder enqueues a reminder to fire ahead of the
	// booking start. Bookings already too close to start are skipped.
	ScheduleBookingReminder(booking *models.Booking, phone string) error
}

// AsynqReminderScheduler implements ReminderScheduler on an asynq queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewAsynqReminderScheduler builds the scheduler from AppConfig.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleBookingReminder enqueues a reminder task at start minus lead time.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking *models.Booking, phone string) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse booking start: %w", err)
	}

	fireAt := start.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		// Booking starts too soon for a reminder to be useful.
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: booking.ID,
		Phone:     phone,
		Body: fmt.Sprintf("⏰ Lembrete: sua reserva na %s começa às %s.",
			booking.ResourceName, booking.StartTime),
		FireDate: fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
