package models

import "time"

// Intent is the closed classification of what action the user wants.
type Intent string

const (
	IntentCreateBooking     Intent = "criar_reserva"
	IntentCancelBooking     Intent = "cancelar_reserva"
	IntentListAvailability  Intent = "listar_disponibilidade"
	IntentRescheduleBooking Intent = "remarcar_reserva"
	IntentUnknown           Intent = "desconhecido"
)

// InterpretedRequest is the structured reading of one inbound message.
// It is a pure value: constructed fresh per utterance and never mutated.
// Unresolved slots stay at their zero value; the interpreter never fails.
type InterpretedRequest struct {
	Intent Intent `json:"intent"`

	// Dates holds every calendar date mentioned, duplicates removed,
	// first-seen order. PrimaryDate is the first one (zero when none).
	Dates       []time.Time `json:"dates,omitempty"`
	PrimaryDate time.Time   `json:"primary_date,omitempty"`

	// Times holds every clock time mentioned as "HH:MM", in extraction
	// order. PrimaryTime is set only when exactly one time was found.
	Times       []string `json:"times,omitempty"`
	PrimaryTime string   `json:"primary_time,omitempty"`

	// IntervalStart/IntervalEnd come from an explicit "entre X e Y"
	// phrase, or from a named period of day when no interval is given.
	IntervalStart string `json:"interval_start,omitempty"`
	IntervalEnd   string `json:"interval_end,omitempty"`

	// DurationMinutes is 0 when no duration phrase was found.
	DurationMinutes int `json:"duration_minutes,omitempty"`

	// ResourceName is the canonical resource name, never a raw alias.
	ResourceName string `json:"resource_name,omitempty"`

	// RawText is the original untouched input.
	RawText string `json:"raw_text"`
}

// HasDate reports whether at least one date was extracted.
func (r *InterpretedRequest) HasDate() bool { return !r.PrimaryDate.IsZero() }

// HasTime reports whether exactly one unambiguous time was extracted.
func (r *InterpretedRequest) HasTime() bool { return r.PrimaryTime != "" }
