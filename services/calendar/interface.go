package calendar

import (
	"context"
	"time"
)

// CalendarService mirrors bookings to an external calendar.
type CalendarService interface {
	// CheckAvailability reports whether the [start, end) window is free of
	// events on the mirrored calendar.
	CheckAvailability(ctx context.Context, start, end time.Time) (bool, error)
	// CreateEvent inserts an event for a booking and returns its ID.
	CreateEvent(ctx context.Context, summary, description string, start, end time.Time) (string, error)
	// DeleteEvent removes a previously mirrored event.
	DeleteEvent(ctx context.Context, eventID string) error
}
