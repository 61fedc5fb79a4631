// Package whatsapp prepares the wa.me deep links through which booking
// notifications reach the operator and the customer. The server never talks
// to WhatsApp itself; it builds the pre-filled links and hands them to the
// client over the realtime channel.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingInfo carries everything both message templates need.
type BookingInfo struct {
	BookingID     string
	Name          string
	Mobile        string
	Email         string
	TurfName      string
	BookingDate   string
	TimeSlot      string
	PaymentMethod string
}

// NormalizePhone reduces a customer phone number to the digits-only form
// wa.me expects: strip every non-digit, drop a single leading "0" and
// prefix the country code "91" when absent.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	cleaned = strings.TrimPrefix(cleaned, "0")
	if !strings.HasPrefix(cleaned, "91") {
		cleaned = "91" + cleaned
	}
	return cleaned
}

// OperatorMessage is the template sent to the turf operator.
func OperatorMessage(b BookingInfo) string {
	return fmt.Sprintf("New Turf Booking:\n\nBooking ID: %s\nName: %s\nMobile: %s\nEmail: %s\nTurf: %s\nDate: %s\nTime: %s\nPayment: %s",
		b.BookingID, b.Name, b.Mobile, b.Email, b.TurfName, b.BookingDate, b.TimeSlot, b.PaymentMethod)
}

// CustomerMessage is the confirmation template sent back to the customer.
// The booking stays "Pending Confirmation" until an operator confirms it.
func CustomerMessage(b BookingInfo) string {
	return fmt.Sprintf("Hello %s,\n\nYour Turf Booking is Successfully Received ✅\n\nBooking Details:\nBooking ID: %s\nTurf: %s\nDate: %s\nTime: %s\nPayment: %s\nStatus: Pending Confirmation\n\nThank you for booking with us.\nWe will confirm shortly.",
		b.Name, b.BookingID, b.TurfName, b.BookingDate, b.TimeSlot, b.PaymentMethod)
}

// LinkBuilder assembles deep links against a configurable messaging base
// URL (https://wa.me in production).
type LinkBuilder struct {
	BaseURL       string
	OperatorPhone string
}

func (lb LinkBuilder) link(phone, message string) string {
	return fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(lb.BaseURL, "/"), phone, url.QueryEscape(message))
}

// ForOperator builds the operator-addressed link for a booking.
func (lb LinkBuilder) ForOperator(b BookingInfo) string {
	return lb.link(lb.OperatorPhone, OperatorMessage(b))
}

// ForCustomer builds the customer-addressed link for a booking.
func (lb LinkBuilder) ForCustomer(b BookingInfo) string {
	return lb.link(NormalizePhone(b.Mobile), CustomerMessage(b))
}
