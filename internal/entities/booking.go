package entities

import "time"

// BookingRequest is the raw form payload as it arrives from the browser.
// Nothing in it is trusted until it passes through validation.
type BookingRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	People float64 `json:"people"`
	Slot   string  `json:"slot"`
	SlotID string  `json:"slotId"`
}

// Booking is an accepted reservation. It is created once and never mutated;
// there is no cancellation flow.
type Booking struct {
	ID        int64     `json:"id,omitempty"`
	Slot      string    `json:"slot"`
	SlotID    string    `json:"slotId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	People    int       `json:"people"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
