package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samirrathod1410/playarena-gameon-hub/config"
	"github.com/samirrathod1410/playarena-gameon-hub/models"
	"github.com/samirrathod1410/playarena-gameon-hub/monitoring"
	"github.com/samirrathod1410/playarena-gameon-hub/status"
	"github.com/samirrathod1410/playarena-gameon-hub/utils"
	"github.com/samirrathod1410/playarena-gameon-hub/whatsapp"
)

const (
	bookingCodePrefix   = "TBK"
	bookingCodeMin      = 10000
	bookingCodeMax      = 99999
	bookingCodeAttempts = 3

	defaultPaymentMethod = "Pay at Turf"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitRegex = regexp.MustCompile(`\D`)
)

// Notifier hands a booking off to the outbound messaging sink. Delivery is
// best-effort and never part of the transaction's success criterion.
type Notifier interface {
	NotifyBooking(ctx context.Context, info whatsapp.BookingInfo, userID string) error
}

// BookingRequest is the canonical booking contract: name, mobile and email
// are required; the payment method defaults to pay-at-turf when omitted.
type BookingRequest struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	GroundID      string `json:"ground_id"`
	Date          string `json:"date"`       // "YYYY-MM-DD"
	SlotStart     string `json:"slot_start"` // "HH:MM"
	PaymentMethod string `json:"payment_method"`
}

type BookingService struct {
	store        BookingStore
	catalog      CatalogSource
	availability AvailabilitySource
	notifier     Notifier
	redis        *redis.Client
	cfg          *config.Config
}

func NewBookingService(store BookingStore, catalog CatalogSource, availability AvailabilitySource, notifier Notifier, redisClient *redis.Client, cfg *config.Config) *BookingService {
	return &BookingService{
		store:        store,
		catalog:      catalog,
		availability: availability,
		notifier:     notifier,
		redis:        redisClient,
		cfg:          cfg,
	}
}

// CreateBooking runs the whole booking transaction: validate, price, guard
// against duplicate in-flight submissions, persist a Pending record, then
// notify operator and customer. A persistence failure sends no notification
// and is not retried. Note the slot is never locked; two concurrent
// customers can still double-book and an operator resolves it later.
func (s *BookingService) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	contact, err := validateContact(req)
	if err != nil {
		monitoring.TrackValidationFailure(err.Field)
		return nil, err
	}

	ground, groundErr := s.catalog.GroundByID(ctx, req.GroundID)
	if groundErr != nil {
		return nil, status.Validation("ground_id", "unknown ground")
	}

	date, dateErr := time.Parse(time.DateOnly, req.Date)
	if dateErr != nil {
		return nil, status.Validation("date", "date must be YYYY-MM-DD")
	}

	slot, slotErr := s.resolveSlot(ground, req.SlotStart)
	if slotErr != nil {
		return nil, slotErr
	}

	booked, availErr := s.availability.BookedStarts(ctx, ground.ID, req.Date)
	if availErr == nil && booked[slot.Start] {
		return nil, status.ErrSlotUnavailable
	}

	price, priceErr := CalculatePrice(ground.BasePrice, slot.Start, date)
	if priceErr != nil {
		return nil, priceErr
	}

	release, guardErr := s.acquireGuard(ctx, ground.ID, req.Date, slot.Start, contact.mobile)
	if guardErr != nil {
		return nil, guardErr
	}

	booking := &models.Booking{
		Code:          s.newBookingCode(ctx),
		UserID:        req.UserID,
		Name:          contact.name,
		Mobile:        contact.mobile,
		Email:         contact.email,
		GroundID:      ground.ID,
		TurfName:      ground.Name,
		BookingDate:   req.Date,
		TimeSlot:      slot.Label(),
		PaymentMethod: contact.paymentMethod,
		Amount:        price.Total,
		Status:        models.BookingPending,
	}

	if err := s.store.Insert(ctx, booking); err != nil {
		release()
		return nil, err
	}

	monitoring.TrackBookingCreated(string(ground.Sport))

	// Best effort from here on: the booking is already persisted.
	info := whatsapp.BookingInfo{
		BookingID:     booking.Code,
		Name:          booking.Name,
		Mobile:        booking.Mobile,
		Email:         booking.Email,
		TurfName:      booking.TurfName,
		BookingDate:   booking.BookingDate,
		TimeSlot:      booking.TimeSlot,
		PaymentMethod: booking.PaymentMethod,
	}
	if err := s.notifier.NotifyBooking(ctx, info, booking.UserID); err != nil {
		slog.Error("booking notification hand-off failed", "code", booking.Code, "error", err)
	}

	return booking, nil
}

// Confirm transitions a Pending booking to Confirmed. Confirming an already
// Confirmed booking is a no-op; a Cancelled booking is never re-opened.
func (s *BookingService) Confirm(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingCancelled:
		return nil, status.ErrCancelledBooking
	case models.BookingConfirmed:
		return booking, nil
	}

	if err := s.store.SetStatus(ctx, id, models.BookingConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.BookingConfirmed
	return booking, nil
}

// Cancel transitions a booking to Cancelled. Cancelling an already
// Cancelled booking is an idempotent no-op.
func (s *BookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingCancelled {
		return booking, nil
	}

	if err := s.store.SetStatus(ctx, id, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	return booking, nil
}

type contactFields struct {
	name          string
	mobile        string
	email         string
	paymentMethod string
}

func validateContact(req BookingRequest) (contactFields, *status.ValidationError) {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)
	email := strings.TrimSpace(req.Email)

	if name == "" {
		return contactFields{}, status.Validation("name", "name is required")
	}
	if mobile == "" {
		return contactFields{}, status.Validation("mobile", "mobile number is required")
	}
	if email == "" {
		return contactFields{}, status.Validation("email", "email is required")
	}

	digits := digitRegex.ReplaceAllString(mobile, "")
	if len(digits) < 10 {
		return contactFields{}, status.Validation("mobile", "enter a valid 10-digit mobile number")
	}
	if !phoneRegex.MatchString(digits[len(digits)-10:]) {
		return contactFields{}, status.Validation("mobile", "enter a valid 10-digit mobile number")
	}

	// Advisory only; kept permissive on purpose.
	if !emailRegex.MatchString(email) {
		return contactFields{}, status.Validation("email", "enter a valid email address")
	}

	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	return contactFields{name: name, mobile: mobile, email: email, paymentMethod: paymentMethod}, nil
}

func (s *BookingService) resolveSlot(ground *models.Ground, slotStart string) (models.Slot, error) {
	slots, err := GenerateSlots(ground.OpenTime, ground.CloseTime, ground.SlotDuration)
	if err != nil {
		return models.Slot{}, err
	}
	for _, slot := range slots {
		if slot.Start == slotStart {
			return slot, nil
		}
	}
	return models.Slot{}, status.Validation("slot_start", "slot is outside the ground's operating hours")
}

// acquireGuard takes a short-lived Redis key so that a double-submit of the
// same slot while the first request is in flight fails fast. The key is
// released on persistence failure and otherwise expires on its own.
func (s *BookingService) acquireGuard(ctx context.Context, groundID, date, slotStart, mobile string) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}

	key := fmt.Sprintf("booking:inflight:%s:%s:%s:%s", groundID, date, slotStart, mobile)
	ok, err := s.redis.SetNX(ctx, key, "1", s.cfg.BookingGuardTTL).Result()
	if err != nil {
		// Redis being down must not block bookings.
		slog.Warn("booking guard unavailable", "error", err)
		return func() {}, nil
	}
	if !ok {
		return nil, status.ErrBookingInFlight
	}

	return func() { s.redis.Del(context.Background(), key) }, nil
}

// newBookingCode generates the human-facing "TBK" + 5 digit reference,
// drawn uniformly from [10000, 99999]. The format makes no global
// uniqueness promise, so a few store lookups weed out collisions; after
// that the last candidate is accepted as-is.
func (s *BookingService) newBookingCode(ctx context.Context) string {
	var code string
	for i := 0; i < bookingCodeAttempts; i++ {
		n, err := utils.RandomInt(bookingCodeMin, bookingCodeMax)
		if err != nil {
			// crypto/rand practically never fails; fall back to a
			// timestamp-derived value rather than aborting the booking.
			n = bookingCodeMin + time.Now().UnixNano()%(bookingCodeMax-bookingCodeMin+1)
		}
		code = fmt.Sprintf("%s%d", bookingCodePrefix, n)

		exists, err := s.store.CodeExists(ctx, code)
		if err != nil || !exists {
			break
		}
	}
	return code
}
