package models

// InboundMessage is the payload posted by the WhatsApp gateway webhook.
// Gateways disagree on field names, so both body/text and from/sender/author
// are accepted.
type InboundMessage struct {
	Body   string `json:"body"`
	Text   string `json:"text"`
	From   string `json:"from"`
	Sender string `json:"sender"`
	Author string `json:"author"`
}

// MessageText returns the message body regardless of gateway naming.
func (m *InboundMessage) MessageText() string {
	if m.Body != "" {
		return m.Body
	}
	return m.Text
}

// SenderPhone returns the originating phone number regardless of gateway naming.
func (m *InboundMessage) SenderPhone() string {
	if m.From != "" {
		return m.From
	}
	if m.Sender != "" {
		return m.Sender
	}
	return m.Author
}

// WorkflowResult summarizes what the booking workflow did with a message.
type WorkflowResult struct {
	Status    string `json:"status"`
	BookingID string `json:"booking_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Reply     string `json:"reply,omitempty"`
}
