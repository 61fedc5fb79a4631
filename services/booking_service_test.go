package services

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrathod1410/playarena-gameon-hub/config"
	"github.com/samirrathod1410/playarena-gameon-hub/models"
	"github.com/samirrathod1410/playarena-gameon-hub/status"
	"github.com/samirrathod1410/playarena-gameon-hub/whatsapp"
)

var bookingCodeRegex = regexp.MustCompile(`^TBK\d{5}$`)

type fakeNotifier struct {
	infos   []whatsapp.BookingInfo
	userIDs []string
	err     error
}

func (f *fakeNotifier) NotifyBooking(_ context.Context, info whatsapp.BookingInfo, userID string) error {
	f.infos = append(f.infos, info)
	f.userIDs = append(f.userIDs, userID)
	return f.err
}

func testGround() *models.Ground {
	return &models.Ground{
		ID:           "g1",
		Name:         "Stumps Arena",
		Sport:        models.SportBoxCricket,
		Area:         "Satellite",
		BasePrice:    1000,
		SlotDuration: 60,
		OpenTime:     "06:00",
		CloseTime:    "23:00",
	}
}

func setupBookingService() (*BookingService, *FixtureBookingStore, *fakeNotifier, FixtureAvailability) {
	store := &FixtureBookingStore{}
	notifier := &fakeNotifier{}
	availability := FixtureAvailability{}
	catalog := FixtureCatalog{"g1": testGround()}

	cfg := &config.Config{BookingGuardTTL: 30 * time.Second}
	service := NewBookingService(store, catalog, availability, notifier, nil, cfg)

	return service, store, notifier, availability
}

func validRequest() BookingRequest {
	return BookingRequest{
		UserID:    "user1",
		Name:      "Raj Patel",
		Mobile:    "9876543210",
		Email:     "raj@example.com",
		GroundID:  "g1",
		Date:      "2026-01-03", // a Saturday
		SlotStart: "18:00",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	service, store, notifier, _ := setupBookingService()

	booking, err := service.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, store.Bookings, 1)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Regexp(t, bookingCodeRegex, booking.Code)
	assert.NotEmpty(t, booking.ID)
	assert.NotEqual(t, booking.ID, booking.Code)
	assert.Equal(t, "Stumps Arena", booking.TurfName)
	assert.Equal(t, "18:00 - 19:00", booking.TimeSlot)

	// peak Saturday evening: 1000 * 2 * 1.25
	assert.Equal(t, int64(2500), booking.Amount)

	// payment method defaults when the form omits it
	assert.Equal(t, "Pay at Turf", booking.PaymentMethod)

	require.Len(t, notifier.infos, 1)
	assert.Equal(t, booking.Code, notifier.infos[0].BookingID)
	assert.Equal(t, "user1", notifier.userIDs[0])
}

func TestCreateBooking_InvalidPhone(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		valid  bool
	}{
		{"plain ten digits", "9876543210", true},
		{"nine digits", "987654321", false},
		{"formatted with country code", "+91 98765 43210", true},
		{"letters only", "not-a-phone", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, notifier, _ := setupBookingService()

			req := validRequest()
			req.Mobile = tt.mobile

			_, err := service.CreateBooking(context.Background(), req)
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			ve, ok := status.AsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, "mobile", ve.Field)
			assert.Empty(t, store.Bookings, "no record may be created")
			assert.Empty(t, notifier.infos, "no notification may be sent")
		})
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	for _, field := range []string{"name", "email"} {
		service, store, _, _ := setupBookingService()

		req := validRequest()
		switch field {
		case "name":
			req.Name = "   "
		case "email":
			req.Email = ""
		}

		_, err := service.CreateBooking(context.Background(), req)
		require.Error(t, err)
		ve, ok := status.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, field, ve.Field)
		assert.Empty(t, store.Bookings)
	}
}

func TestCreateBooking_BadEmail(t *testing.T) {
	service, _, _, _ := setupBookingService()

	req := validRequest()
	req.Email = "not an email"

	_, err := service.CreateBooking(context.Background(), req)
	ve, ok := status.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "email", ve.Field)
}

func TestCreateBooking_UnknownGround(t *testing.T) {
	service, _, _, _ := setupBookingService()

	req := validRequest()
	req.GroundID = "nope"

	_, err := service.CreateBooking(context.Background(), req)
	_, ok := status.AsValidation(err)
	assert.True(t, ok)
}

func TestCreateBooking_SlotOutsideOperatingHours(t *testing.T) {
	service, _, _, _ := setupBookingService()

	req := validRequest()
	req.SlotStart = "05:00"

	_, err := service.CreateBooking(context.Background(), req)
	ve, ok := status.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "slot_start", ve.Field)
}

func TestCreateBooking_SlotAlreadyBooked(t *testing.T) {
	service, store, notifier, availability := setupBookingService()
	availability["g1|2026-01-03"] = map[string]bool{"18:00": true}

	_, err := service.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, status.ErrSlotUnavailable)
	assert.Empty(t, store.Bookings)
	assert.Empty(t, notifier.infos)
}

func TestCreateBooking_PersistenceFailureSendsNoNotification(t *testing.T) {
	service, store, notifier, _ := setupBookingService()
	store.InsertErr = status.ErrPersistence

	_, err := service.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, status.ErrPersistence)
	assert.Empty(t, notifier.infos)
}

func TestCreateBooking_NotificationFailureDoesNotFailBooking(t *testing.T) {
	service, store, notifier, _ := setupBookingService()
	notifier.err = errors.New("pubnub down")

	booking, err := service.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err, "booking success is defined by persistence alone")
	assert.Len(t, store.Bookings, 1)
	assert.Equal(t, models.BookingPending, booking.Status)
}

func TestCreateBooking_InFlightGuard(t *testing.T) {
	db, mock := redismock.NewClientMock()

	store := &FixtureBookingStore{}
	catalog := FixtureCatalog{"g1": testGround()}
	cfg := &config.Config{BookingGuardTTL: 30 * time.Second}
	service := NewBookingService(store, catalog, FixtureAvailability{}, &fakeNotifier{}, db, cfg)

	mock.ExpectSetNX("booking:inflight:g1:2026-01-03:18:00:9876543210", "1", 30*time.Second).SetVal(false)

	_, err := service.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, status.ErrBookingInFlight)
	assert.Empty(t, store.Bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_GuardReleasedOnPersistenceFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()

	store := &FixtureBookingStore{InsertErr: status.ErrPersistence}
	catalog := FixtureCatalog{"g1": testGround()}
	cfg := &config.Config{BookingGuardTTL: 30 * time.Second}
	service := NewBookingService(store, catalog, FixtureAvailability{}, &fakeNotifier{}, db, cfg)

	mock.ExpectSetNX("booking:inflight:g1:2026-01-03:18:00:9876543210", "1", 30*time.Second).SetVal(true)
	mock.ExpectDel("booking:inflight:g1:2026-01-03:18:00:9876543210").SetVal(1)

	_, err := service.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, status.ErrPersistence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirm_Transitions(t *testing.T) {
	service, store, _, _ := setupBookingService()

	booking, err := service.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	confirmed, err := service.Confirm(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.Equal(t, models.BookingConfirmed, store.Bookings[0].Status)

	// confirming again is a no-op
	again, err := service.Confirm(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, again.Status)
}

func TestConfirm_CancelledBookingStaysCancelled(t *testing.T) {
	service, _, _, _ := setupBookingService()

	booking, err := service.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = service.Cancel(context.Background(), booking.ID)
	require.NoError(t, err)

	_, err = service.Confirm(context.Background(), booking.ID)
	assert.ErrorIs(t, err, status.ErrCancelledBooking)
}

func TestCancel_Idempotent(t *testing.T) {
	service, store, _, _ := setupBookingService()

	booking, err := service.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	cancelled, err := service.Cancel(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	// cancelling an already cancelled booking is a no-op, not an error
	cancelled, err = service.Cancel(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.Equal(t, models.BookingCancelled, store.Bookings[0].Status)
}

func TestCancel_UnknownBooking(t *testing.T) {
	service, _, _, _ := setupBookingService()

	_, err := service.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, status.ErrBookingNotFound)
}

func TestBookingCodes_LookupFailureStopsRetrying(t *testing.T) {
	service, store, _, _ := setupBookingService()
	store.CodeExistsErr = errors.New("store unavailable")

	// a failed uniqueness lookup accepts the current candidate instead of
	// pretending the code is free; the booking still goes through
	booking, err := service.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Regexp(t, bookingCodeRegex, booking.Code)
}

func TestBookingCodes_StayInRange(t *testing.T) {
	service, _, _, _ := setupBookingService()

	for i := 0; i < 50; i++ {
		code := service.newBookingCode(context.Background())
		require.Regexp(t, bookingCodeRegex, code)

		n, err := strconv.Atoi(code[3:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
	}
}
