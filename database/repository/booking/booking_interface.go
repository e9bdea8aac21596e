package bookingRepo

import "reservabot/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID, nil when absent.
	GetByID(id string) (*models.Booking, error)
	// HasConflict reports whether a confirmed booking of the resource
	// overlaps the [start, end) window on the given date.
	HasConflict(resourceID, date, start, end string) (bool, error)
	// FindConfirmed retrieves the customer's confirmed booking at the
	// exact date and start time, nil when absent.
	FindConfirmed(customerID, date, start string) (*models.Booking, error)
	// ListConfirmedByDate retrieves all confirmed bookings on a date,
	// ordered by resource name then start time.
	ListConfirmedByDate(date string) ([]models.Booking, error)
	// ListAll retrieves bookings ordered newest first, up to limit.
	ListAll(limit int64) ([]models.Booking, error)
	// SetStatus updates the status of a booking.
	SetStatus(id, status string) error
}
