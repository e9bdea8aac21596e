package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"reservabot/config"
)

// GoogleCalendarService implements CalendarService against the Google
// Calendar API using a service-account credentials file.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
	location   *time.Location
}

// NewCalendarService builds the calendar mirror from AppConfig. When
// mirroring is disabled it returns a no-op implementation whose
// availability checks always pass.
func NewCalendarService(ctx context.Context) (CalendarService, error) {
	if !config.AppConfig.UseGoogleCalendar {
		return &disabledCalendarService{}, nil
	}

	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.GoogleCredentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	loc, err := time.LoadLocation(config.AppConfig.CalendarTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", config.AppConfig.CalendarTimezone, err)
	}

	return &GoogleCalendarService{
		svc:        svc,
		calendarID: config.AppConfig.GoogleCalendarID,
		location:   loc,
	}, nil
}

// CheckAvailability lists events in the window; the slot is free when none exist.
func (s *GoogleCalendarService) CheckAvailability(ctx context.Context, start, end time.Time) (bool, error) {
	events, err := s.svc.Events.List(s.calendarID).
		TimeMin(s.inLocation(start).Format(time.RFC3339)).
		TimeMax(s.inLocation(end).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return len(events.Items) == 0, nil
}

// CreateEvent inserts a booking event and returns its ID.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, summary, description string, start, end time.Time) (string, error) {
	event := &gcal.Event{
		Summary:     summary,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: s.inLocation(start).Format(time.RFC3339),
			TimeZone: s.location.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: s.inLocation(end).Format(time.RFC3339),
			TimeZone: s.location.String(),
		},
		Reminders: &gcal.EventReminders{UseDefault: true, ForceSendFields: []string{"UseDefault"}},
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// DeleteEvent removes a mirrored event.
func (s *GoogleCalendarService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.svc.Events.Delete(s.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

// inLocation pins a naive time to the configured calendar timezone.
func (s *GoogleCalendarService) inLocation(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, s.location)
}

// disabledCalendarService is used when mirroring is switched off: every
// window is reported free and event IDs are placeholders.
type disabledCalendarService struct{}

func (d *disabledCalendarService) CheckAvailability(context.Context, time.Time, time.Time) (bool, error) {
	return true, nil
}

func (d *disabledCalendarService) CreateEvent(context.Context, string, string, time.Time, time.Time) (string, error) {
	return "dummy_event_id", nil
}

func (d *disabledCalendarService) DeleteEvent(context.Context, string) error {
	return nil
}
