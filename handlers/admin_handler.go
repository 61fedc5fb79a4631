package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/samirrathod1410/playarena-gameon-hub/auth"
	"github.com/samirrathod1410/playarena-gameon-hub/models"
	"github.com/samirrathod1410/playarena-gameon-hub/services"
)

// AdminHandler is the role-gated back office: bookings, grounds and users.
// Ground and user operations are thin store passthroughs; only booking
// status transitions carry rules, and those live in the booking service.
type AdminHandler struct {
	app      *pocketbase.PocketBase
	bookings *services.BookingService
}

func NewAdminHandler(app *pocketbase.PocketBase, bookings *services.BookingService) *AdminHandler {
	return &AdminHandler{
		app:      app,
		bookings: bookings,
	}
}

func requireOperator(e *core.RequestEvent) error {
	if !auth.NewRecordSession(e.Auth).HasRole(auth.RoleAdmin) {
		return apis.NewForbiddenError("Admin access required", nil)
	}
	return nil
}

// ListBookings - All bookings, optionally filtered by status, date or ground
func (h *AdminHandler) ListBookings(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	query := e.Request.URL.Query()

	var parts []string
	params := map[string]any{}
	if st := query.Get("status"); st != "" {
		parts = append(parts, "status = {:status}")
		params["status"] = st
	}
	if date := query.Get("date"); date != "" {
		parts = append(parts, "booking_date = {:date}")
		params["date"] = date
	}
	if groundID := query.Get("ground_id"); groundID != "" {
		parts = append(parts, "ground_id = {:groundId}")
		params["groundId"] = groundID
	}

	limit := 100
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var records []*core.Record
	var err error
	if len(parts) == 0 {
		records, err = h.app.FindRecordsByFilter("bookings", "id != ''", "-created", limit, 0)
	} else {
		records, err = h.app.FindRecordsByFilter("bookings", strings.Join(parts, " && "), "-created", limit, 0, params)
	}
	if err != nil {
		return apis.NewBadRequestError("Failed to list bookings", err)
	}

	result := make([]*models.Booking, 0, len(records))
	for _, record := range records {
		result = append(result, services.BookingFromRecord(record))
	}

	return e.JSON(http.StatusOK, result)
}

// ConfirmBooking - Pending -> Confirmed
func (h *AdminHandler) ConfirmBooking(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	booking, err := h.bookings.Confirm(e.Request.Context(), e.Request.PathValue("id"))
	if err != nil {
		return mapBookingError(err)
	}

	return e.JSON(http.StatusOK, booking)
}

// CancelBooking - Any state -> Cancelled; cancelling a cancelled booking is
// a no-op
func (h *AdminHandler) CancelBooking(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	booking, err := h.bookings.Cancel(e.Request.Context(), e.Request.PathValue("id"))
	if err != nil {
		return mapBookingError(err)
	}

	return e.JSON(http.StatusOK, booking)
}

// DeleteBooking - Remove a booking record entirely
func (h *AdminHandler) DeleteBooking(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	record, err := h.app.FindRecordById("bookings", e.Request.PathValue("id"))
	if err != nil {
		return apis.NewNotFoundError("Booking not found", nil)
	}

	if err := h.app.Delete(record); err != nil {
		return apis.NewBadRequestError("Failed to delete booking", err)
	}

	return e.JSON(http.StatusOK, map[string]any{"message": "Booking deleted"})
}

// Dashboard - Aggregate counts for the admin landing page
func (h *AdminHandler) Dashboard(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	var rows []dbx.NullStringMap
	err := h.app.DB().
		NewQuery("SELECT status, COUNT(*) AS total, COALESCE(SUM(amount), 0) AS revenue FROM bookings GROUP BY status").
		All(&rows)
	if err != nil {
		return apis.NewBadRequestError("Failed to load dashboard", err)
	}

	byStatus := map[string]any{}
	totalBookings := 0
	var confirmedRevenue int64
	for _, row := range rows {
		count, _ := strconv.Atoi(row["total"].String)
		revenue, _ := strconv.ParseInt(row["revenue"].String, 10, 64)
		byStatus[row["status"].String] = map[string]any{
			"count":   count,
			"revenue": revenue,
		}
		totalBookings += count
		if row["status"].String == string(models.BookingConfirmed) {
			confirmedRevenue = revenue
		}
	}

	groundCount := 0
	if grounds, err := h.app.FindAllRecords("grounds"); err == nil {
		groundCount = len(grounds)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"total_bookings":    totalBookings,
		"confirmed_revenue": confirmedRevenue,
		"by_status":         byStatus,
		"ground_count":      groundCount,
	})
}

// ListUsers - Users with their roles
func (h *AdminHandler) ListUsers(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	records, err := h.app.FindRecordsByFilter("users", "id != ''", "-created", 200, 0)
	if err != nil {
		return apis.NewBadRequestError("Failed to list users", err)
	}

	result := make([]map[string]any, 0, len(records))
	for _, record := range records {
		result = append(result, map[string]any{
			"id":      record.Id,
			"email":   record.GetString("email"),
			"name":    record.GetString("name"),
			"role":    record.GetString("role"),
			"created": record.GetDateTime("created"),
		})
	}

	return e.JSON(http.StatusOK, result)
}

// CreateGround - Add a catalog entry
func (h *AdminHandler) CreateGround(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	var fields map[string]any
	if err := e.BindBody(&fields); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	collection, err := h.app.FindCollectionByNameOrId("grounds")
	if err != nil {
		return apis.NewBadRequestError("Grounds collection missing", err)
	}

	record := core.NewRecord(collection)
	record.Load(fields)
	if err := h.app.Save(record); err != nil {
		return apis.NewBadRequestError("Failed to create ground", err)
	}

	return e.JSON(http.StatusOK, map[string]any{"id": record.Id})
}

// UpdateGround - Patch a catalog entry
func (h *AdminHandler) UpdateGround(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	record, err := h.app.FindRecordById("grounds", e.Request.PathValue("id"))
	if err != nil {
		return apis.NewNotFoundError("Ground not found", nil)
	}

	var fields map[string]any
	if err := e.BindBody(&fields); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	record.Load(fields)
	if err := h.app.Save(record); err != nil {
		return apis.NewBadRequestError("Failed to update ground", err)
	}

	return e.JSON(http.StatusOK, map[string]any{"message": "Ground updated"})
}

// DeleteGround - Remove a catalog entry
func (h *AdminHandler) DeleteGround(e *core.RequestEvent) error {
	if err := requireOperator(e); err != nil {
		return err
	}

	record, err := h.app.FindRecordById("grounds", e.Request.PathValue("id"))
	if err != nil {
		return apis.NewNotFoundError("Ground not found", nil)
	}

	if err := h.app.Delete(record); err != nil {
		return apis.NewBadRequestError("Failed to delete ground", err)
	}

	return e.JSON(http.StatusOK, map[string]any{"message": "Ground deleted"})
}
