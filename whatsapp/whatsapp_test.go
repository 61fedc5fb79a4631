package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleBooking() BookingInfo {
	return BookingInfo{
		BookingID:     "TBK12345",
		Name:          "Raj Patel",
		Mobile:        "9876543210",
		Email:         "raj@example.com",
		TurfName:      "Stumps Arena",
		BookingDate:   "2026-01-03",
		TimeSlot:      "18:00 - 19:00",
		PaymentMethod: "Pay at Turf",
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "919876543210"},
		{"09876543210", "919876543210"},
		{"+91 98765 43210", "919876543210"},
		{"91-98765-43210", "919876543210"},
		{"919876543210", "919876543210"},
		{"(987) 654-3210", "919876543210"},
		// only a single leading zero is dropped
		{"009876543210", "9109876543210"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), tt.in)
	}
}

func TestOperatorMessage(t *testing.T) {
	msg := OperatorMessage(sampleBooking())

	assert.True(t, strings.HasPrefix(msg, "New Turf Booking:"))
	assert.Contains(t, msg, "Booking ID: TBK12345")
	assert.Contains(t, msg, "Name: Raj Patel")
	assert.Contains(t, msg, "Mobile: 9876543210")
	assert.Contains(t, msg, "Turf: Stumps Arena")
	assert.Contains(t, msg, "Date: 2026-01-03")
	assert.Contains(t, msg, "Time: 18:00 - 19:00")
	assert.Contains(t, msg, "Payment: Pay at Turf")
}

func TestCustomerMessage(t *testing.T) {
	msg := CustomerMessage(sampleBooking())

	assert.True(t, strings.HasPrefix(msg, "Hello Raj Patel,"))
	assert.Contains(t, msg, "Successfully Received")
	assert.Contains(t, msg, "Booking ID: TBK12345")
	assert.Contains(t, msg, "Status: Pending Confirmation")
	assert.Contains(t, msg, "We will confirm shortly.")
	// the customer message never leaks their own contact details back
	assert.NotContains(t, msg, "raj@example.com")
}

func TestLinkBuilder_ForOperator(t *testing.T) {
	lb := LinkBuilder{BaseURL: "https://wa.me", OperatorPhone: "919876543210"}

	link := lb.ForOperator(sampleBooking())
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.Contains(t, link, "TBK12345")
	// message text is query-escaped
	assert.NotContains(t, link, "\n")
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "%0A")
}

func TestLinkBuilder_ForCustomer(t *testing.T) {
	lb := LinkBuilder{BaseURL: "https://wa.me", OperatorPhone: "919876543210"}

	booking := sampleBooking()
	booking.Mobile = "+91 98765 43210"

	link := lb.ForCustomer(booking)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
}

func TestLinkBuilder_TrimsTrailingSlash(t *testing.T) {
	lb := LinkBuilder{BaseURL: "https://wa.me/", OperatorPhone: "919876543210"}

	link := lb.ForOperator(sampleBooking())
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
}
