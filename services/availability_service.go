package services

import (
	"context"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
)

// AvailabilitySource reports which slot start times are already taken for a
// ground on a date. Implementations must evaluate fresh per request.
type AvailabilitySource interface {
	BookedStarts(ctx context.Context, groundID, date string) (map[string]bool, error)
}

// SlotAvailability pairs a generated slot with its booked flag and the
// price a customer would pay for it.
type SlotAvailability struct {
	models.Slot
	Booked bool                  `json:"booked"`
	Price  models.PriceBreakdown `json:"price"`
}

// MarkAvailability flags every slot whose start time appears in booked.
// Pure; the input slice is not modified.
func MarkAvailability(slots []models.Slot, booked map[string]bool) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotAvailability{
			Slot:   slot,
			Booked: booked[slot.Start],
		})
	}
	return out
}

// bookingAvailability reads real booking records. Cancelled bookings release
// their slot and are excluded from the conflict set.
type bookingAvailability struct {
	app core.App
}

func NewBookingAvailability(app core.App) AvailabilitySource {
	return &bookingAvailability{app: app}
}

func (a *bookingAvailability) BookedStarts(ctx context.Context, groundID, date string) (map[string]bool, error) {
	records, err := a.app.FindRecordsByFilter(
		"bookings",
		"ground_id = {:groundId} && booking_date = {:date} && status != {:cancelled}",
		"",
		0,
		0,
		map[string]any{
			"groundId":  groundID,
			"date":      date,
			"cancelled": string(models.BookingCancelled),
		},
	)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(records))
	for _, record := range records {
		if start := slotStart(record.GetString("time_slot")); start != "" {
			booked[start] = true
		}
	}
	return booked, nil
}

// slotStart extracts "HH:MM" from a stored "HH:MM - HH:MM" label.
func slotStart(label string) string {
	start, _, _ := strings.Cut(label, " - ")
	return strings.TrimSpace(start)
}

// FixtureAvailability is a deterministic AvailabilitySource for tests and
// local development seeding.
type FixtureAvailability map[string]map[string]bool // groundID|date -> starts

func (f FixtureAvailability) BookedStarts(_ context.Context, groundID, date string) (map[string]bool, error) {
	return f[groundID+"|"+date], nil
}
