package models

import "time"

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
)

// Booking represents a reservation of a resource for a time window on a day.
type Booking struct {
	ID            string    `bson:"id" json:"id"`                                             // Unique booking identifier (UUID)
	CustomerID    string    `bson:"customer_id" json:"customer_id"`                           // Customer who made the booking
	ResourceID    string    `bson:"resource_id" json:"resource_id"`                           // Booked resource
	ResourceName  string    `bson:"resource_name" json:"resource_name"`                       // Denormalized for availability listings
	Date          string    `bson:"date" json:"date"`                                         // Booking date in "YYYY-MM-DD" format
	StartTime     string    `bson:"start_time" json:"start_time"`                             // "HH:MM", zero-padded
	EndTime       string    `bson:"end_time" json:"end_time"`                                 // "HH:MM", zero-padded
	Status        string    `bson:"status" json:"status"`                                     // pending, confirmed or canceled
	GoogleEventID string    `bson:"google_event_id,omitempty" json:"google_event_id,omitempty"` // Mirrored calendar event, if any
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
