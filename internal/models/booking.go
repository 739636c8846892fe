package models

import "time"

// BookingStatusConfirmed is the only status a simulated booking can end in.
const BookingStatusConfirmed = "confirmed"

// BookingRequest is the ticket booking payload sent to the submission backend.
type BookingRequest struct {
	TicketTier      string  `json:"ticketTier"`
	Quantity        int     `json:"quantity"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Company         string  `json:"company,omitempty"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	Total           float64 `json:"total"`
}

// Booking is the record returned for a confirmed booking.
type Booking struct {
	BookingRequest
	ID       int64     `json:"Id"`
	Status   string    `json:"status"`
	BookedAt time.Time `json:"bookedAt"`
}
