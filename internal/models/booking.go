package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	// BookingCancelled is reserved: no code path transitions a booking
	// into it and cancelled rows never free capacity.
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	TicketTypeID string        `json:"ticketTypeId"`
	Status       BookingStatus `json:"status"`
	BookingDate  time.Time     `json:"bookingDate"`
	TicketType   *TicketType   `json:"ticketType,omitempty"`
}
