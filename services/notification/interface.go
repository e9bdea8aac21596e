package notification

import "context"

// NotificationService defines methods for sending outbound chat messages.
type NotificationService interface {
	// SendWhatsApp delivers a message to the given phone number through
	// the configured gateway.
	SendWhatsApp(ctx context.Context, phone, body string) error
}
