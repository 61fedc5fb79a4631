package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// Booking is owned by the bookings collection. ID is the store-assigned
// record id; Code is the human-facing reference communicated over WhatsApp.
type Booking struct {
	ID            string        `json:"id"`
	Code          string        `json:"booking_id"`
	UserID        string        `json:"user_id,omitempty"`
	Name          string        `json:"name"`
	Mobile        string        `json:"mobile"`
	Email         string        `json:"email"`
	GroundID      string        `json:"ground_id"`
	TurfName      string        `json:"turf_name"`
	BookingDate   string        `json:"booking_date"` // "YYYY-MM-DD"
	TimeSlot      string        `json:"time_slot"`    // "HH:MM - HH:MM"
	PaymentMethod string        `json:"payment_method"`
	Amount        int64         `json:"amount"`
	Status        BookingStatus `json:"status"`
	Created       time.Time     `json:"created"`
}

// PriceBreakdown is derived per request and never persisted on its own;
// only Total lands on the booking record.
type PriceBreakdown struct {
	Base              int64   `json:"base"`
	PeakMultiplier    float64 `json:"peak_multiplier"`    // 1 or 2
	WeekendMultiplier float64 `json:"weekend_multiplier"` // 1 or 1.25
	Total             int64   `json:"total"`
}
