package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
	"github.com/samirrathod1410/playarena-gameon-hub/status"
)

// BookingStore is the persistence surface the booking transaction needs.
type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	ByID(ctx context.Context, id string) (*models.Booking, error)
	ByCode(ctx context.Context, code string) (*models.Booking, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	SetStatus(ctx context.Context, id string, st models.BookingStatus) error
}

type recordBookingStore struct {
	app core.App
}

func NewRecordBookingStore(app core.App) BookingStore {
	return &recordBookingStore{app: app}
}

func (s *recordBookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	collection, err := s.app.FindCollectionByNameOrId("bookings")
	if err != nil {
		return fmt.Errorf("%w: %v", status.ErrPersistence, err)
	}

	record := core.NewRecord(collection)
	record.Set("booking_id", booking.Code)
	record.Set("user_id", booking.UserID)
	record.Set("name", booking.Name)
	record.Set("mobile", booking.Mobile)
	record.Set("email", booking.Email)
	record.Set("ground_id", booking.GroundID)
	record.Set("turf_name", booking.TurfName)
	record.Set("booking_date", booking.BookingDate)
	record.Set("time_slot", booking.TimeSlot)
	record.Set("payment_method", booking.PaymentMethod)
	record.Set("amount", booking.Amount)
	record.Set("status", string(booking.Status))

	if err := s.app.SaveWithContext(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", status.ErrPersistence, err)
	}

	booking.ID = record.Id
	booking.Created = record.GetDateTime("created").Time()
	return nil
}

func (s *recordBookingStore) ByID(ctx context.Context, id string) (*models.Booking, error) {
	record, err := s.app.FindRecordById("bookings", id)
	if err != nil {
		return nil, status.ErrBookingNotFound
	}
	return BookingFromRecord(record), nil
}

func (s *recordBookingStore) ByCode(ctx context.Context, code string) (*models.Booking, error) {
	record, err := s.app.FindFirstRecordByData("bookings", "booking_id", code)
	if err != nil {
		return nil, status.ErrBookingNotFound
	}
	return BookingFromRecord(record), nil
}

func (s *recordBookingStore) CodeExists(ctx context.Context, code string) (bool, error) {
	_, err := s.app.FindFirstRecordByData("bookings", "booking_id", code)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	}
	return false, err
}

func (s *recordBookingStore) SetStatus(ctx context.Context, id string, st models.BookingStatus) error {
	record, err := s.app.FindRecordById("bookings", id)
	if err != nil {
		return status.ErrBookingNotFound
	}

	record.Set("status", string(st))
	if err := s.app.SaveWithContext(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", status.ErrPersistence, err)
	}
	return nil
}

// BookingFromRecord maps a bookings record to the domain model. Shared with
// the handlers that list records directly.
func BookingFromRecord(record *core.Record) *models.Booking {
	return &models.Booking{
		ID:            record.Id,
		Code:          record.GetString("booking_id"),
		UserID:        record.GetString("user_id"),
		Name:          record.GetString("name"),
		Mobile:        record.GetString("mobile"),
		Email:         record.GetString("email"),
		GroundID:      record.GetString("ground_id"),
		TurfName:      record.GetString("turf_name"),
		BookingDate:   record.GetString("booking_date"),
		TimeSlot:      record.GetString("time_slot"),
		PaymentMethod: record.GetString("payment_method"),
		Amount:        int64(record.GetInt("amount")),
		Status:        models.BookingStatus(record.GetString("status")),
		Created:       record.GetDateTime("created").Time(),
	}
}

// FixtureBookingStore records inserts in memory for tests.
type FixtureBookingStore struct {
	Bookings      []*models.Booking
	InsertErr     error
	CodeExistsErr error
	nextID        int
}

func (f *FixtureBookingStore) Insert(_ context.Context, booking *models.Booking) error {
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.nextID++
	booking.ID = fmt.Sprintf("rec%05d", f.nextID)
	f.Bookings = append(f.Bookings, booking)
	return nil
}

func (f *FixtureBookingStore) ByID(_ context.Context, id string) (*models.Booking, error) {
	for _, b := range f.Bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, status.ErrBookingNotFound
}

func (f *FixtureBookingStore) ByCode(_ context.Context, code string) (*models.Booking, error) {
	for _, b := range f.Bookings {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, status.ErrBookingNotFound
}

func (f *FixtureBookingStore) CodeExists(_ context.Context, code string) (bool, error) {
	if f.CodeExistsErr != nil {
		return false, f.CodeExistsErr
	}
	_, err := f.ByCode(context.Background(), code)
	return err == nil, nil
}

func (f *FixtureBookingStore) SetStatus(_ context.Context, id string, st models.BookingStatus) error {
	for _, b := range f.Bookings {
		if b.ID == id {
			b.Status = st
			return nil
		}
	}
	return status.ErrBookingNotFound
}

var _ BookingStore = (*FixtureBookingStore)(nil)
