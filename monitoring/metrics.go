package monitoring

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings persisted, by sport category",
		},
		[]string{"sport"},
	)

	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_validation_failures_total",
			Help: "Booking requests rejected before any state change",
		},
		[]string{"field"},
	)

	slotQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slot_queries_total",
			Help: "Slot availability listings served",
		},
	)

	notificationPublishes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_publishes_total",
			Help: "Outbound notification hand-offs",
		},
		[]string{"recipient", "outcome"},
	)

	bookingsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bookings_by_status",
			Help: "Current booking counts per status",
		},
		[]string{"status"},
	)
)

func TrackBookingCreated(sport string) {
	bookingsCreated.WithLabelValues(sport).Inc()
}

func TrackValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

func TrackSlotQuery() {
	slotQueries.Inc()
}

func TrackNotification(recipient string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	notificationPublishes.WithLabelValues(recipient, outcome).Inc()
}

// Monitor periodically refreshes the per-status booking gauge from the
// store. Counts come from a raw query; the collection API would load every
// record just to count it.
type Monitor struct {
	app core.App
}

func NewMonitor(app core.App) *Monitor {
	return &Monitor{app: app}
}

func (m *Monitor) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.collectBookingStatuses()
		}
	}
}

func (m *Monitor) collectBookingStatuses() {
	var rows []dbx.NullStringMap
	err := m.app.DB().
		NewQuery("SELECT status, COUNT(*) AS total FROM bookings GROUP BY status").
		All(&rows)
	if err != nil {
		slog.Error("booking status metrics query failed", "error", err)
		return
	}

	for _, row := range rows {
		total, _ := strconv.ParseFloat(row["total"].String, 64)
		bookingsByStatus.WithLabelValues(row["status"].String).Set(total)
	}
}
