// Package models defines the records exchanged with the ticketing backend.
package models

import (
	"fmt"
	"strconv"
	"time"
)

// Event is a bookable event. The list endpoint returns only a subset of the
// fields; the detail endpoint returns all of them.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Price is a decimal rendered as a string by the backend, e.g. "25.00".
	Price Price `json:"price"`

	TotalTickets *int `json:"total_tickets,omitempty"`
	// AvailableTickets is nil when the event has no ticket limit.
	AvailableTickets *int `json:"available_tickets,omitempty"`

	Organizer int64     `json:"organizer,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (e Event) SoldOut() bool {
	return e.AvailableTickets != nil && *e.AvailableTickets == 0
}

// LowStock reports whether only a handful of tickets remain.
func (e Event) LowStock() bool {
	return e.AvailableTickets != nil && *e.AvailableTickets > 0 && *e.AvailableTickets <= 5
}

// Price is a decimal amount as sent by the backend.
type Price string

func (p Price) Float() (float64, error) {
	if p == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(p), 64)
}

// Total formats the price of quantity tickets with two decimals, or "--"
// when the price is unknown or malformed.
func (p Price) Total(quantity int) string {
	v, err := p.Float()
	if err != nil || p == "" {
		return "--"
	}
	return fmt.Sprintf("%.2f", v*float64(quantity))
}

// UnmarshalJSON accepts both a decimal string and a bare JSON number.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*p = ""
		return nil
	}
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil && s != "" {
		return fmt.Errorf("invalid price %q", s)
	}
	*p = Price(s)
	return nil
}
