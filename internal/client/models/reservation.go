package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// EventSummary is the short event description nested in a reservation.
type EventSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	Location  string    `json:"location,omitempty"`
	StartTime time.Time `json:"start_time,omitempty"`
}

// UnmarshalJSON accepts either a nested object or a bare event id, since the
// reservation endpoints return both shapes.
func (s *EventSummary) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '{' {
		var id int64
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*s = EventSummary{ID: id}
		return nil
	}

	type plain EventSummary
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = EventSummary(p)
	return nil
}

type Reservation struct {
	ID        int64        `json:"id"`
	Event     EventSummary `json:"event"`
	Name      string       `json:"name,omitempty"`
	Surname   string       `json:"surname,omitempty"`
	Quantity  int          `json:"quantity"`
	Canceled  bool         `json:"canceled,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
}

// CheckoutConfirmation is the backend answer to a successful checkout. Only
// Reservation is guaranteed; the rest depends on the payment backend.
type CheckoutConfirmation struct {
	Reservation *Reservation `json:"reservation,omitempty"`
	Message     string       `json:"message,omitempty"`
	Total       Price        `json:"total,omitempty"`
}
