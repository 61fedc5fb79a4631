package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/samirrathod1410/playarena-gameon-hub/auth"
	"github.com/samirrathod1410/playarena-gameon-hub/models"
	"github.com/samirrathod1410/playarena-gameon-hub/services"
	"github.com/samirrathod1410/playarena-gameon-hub/status"
)

type BookingHandler struct {
	app      *pocketbase.PocketBase
	bookings *services.BookingService
	store    services.BookingStore
}

func NewBookingHandler(app *pocketbase.PocketBase, bookings *services.BookingService, store services.BookingStore) *BookingHandler {
	return &BookingHandler{
		app:      app,
		bookings: bookings,
		store:    store,
	}
}

// Create - Run the booking transaction for the authenticated user
func (h *BookingHandler) Create(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	var req services.BookingRequest
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	req.UserID = e.Auth.Id
	if req.Email == "" {
		req.Email = e.Auth.GetString("email")
	}

	booking, err := h.bookings.CreateBooking(e.Request.Context(), req)
	if err != nil {
		return mapBookingError(err)
	}

	return e.JSON(http.StatusOK, booking)
}

// History - The authenticated user's latest bookings
func (h *BookingHandler) History(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	records, err := h.app.FindRecordsByFilter(
		"bookings",
		"user_id = {:userId}",
		"-created",
		20,
		0,
		map[string]any{"userId": e.Auth.Id},
	)
	if err != nil {
		return apis.NewBadRequestError("Failed to get bookings", err)
	}

	result := make([]*models.Booking, 0, len(records))
	for _, record := range records {
		result = append(result, services.BookingFromRecord(record))
	}

	return e.JSON(http.StatusOK, result)
}

// GetByCode - Look a booking up by its human-facing code. Customers may only
// see their own bookings; operators see all.
func (h *BookingHandler) GetByCode(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	booking, err := h.store.ByCode(e.Request.Context(), e.Request.PathValue("code"))
	if err != nil {
		return apis.NewNotFoundError("Booking not found", nil)
	}

	session := auth.NewRecordSession(e.Auth)
	if booking.UserID != e.Auth.Id && !session.HasRole(auth.RoleAdmin) {
		return apis.NewForbiddenError("Access denied", nil)
	}

	return e.JSON(http.StatusOK, booking)
}

func mapBookingError(err error) error {
	if ve, ok := status.AsValidation(err); ok {
		return apis.NewBadRequestError(ve.Message, nil)
	}

	switch {
	case errors.Is(err, status.ErrSlotUnavailable):
		return apis.NewApiError(http.StatusConflict, "Slot is already booked", nil)
	case errors.Is(err, status.ErrBookingInFlight):
		return apis.NewApiError(http.StatusConflict, "An identical booking is already in progress", nil)
	case errors.Is(err, status.ErrBookingNotFound):
		return apis.NewNotFoundError("Booking not found", nil)
	case errors.Is(err, status.ErrPersistence):
		return apis.NewApiError(http.StatusInternalServerError, "Booking failed. Please try again.", nil)
	}

	return apis.NewBadRequestError("Request failed", err)
}
