package models

// ReminderPayload is the asynq task payload for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Phone     string `json:"phone"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
