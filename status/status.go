package status

import (
	"errors"
	"fmt"
)

var (
	ErrSlotUnavailable  = errors.New("booking: slot already booked")
	ErrBookingInFlight  = errors.New("booking: identical booking already in progress")
	ErrPersistence      = errors.New("store: insert failed")
	ErrBookingNotFound  = errors.New("booking: not found")
	ErrCancelledBooking = errors.New("booking: cancelled bookings cannot be re-opened")
)

// ValidationError is client-correctable: the request is rejected before any
// state change and the caller is told which field to fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
