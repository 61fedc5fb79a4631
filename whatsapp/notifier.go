package whatsapp

import (
	"context"
	"log/slog"
	"time"

	pubnub "github.com/pubnub/go"

	"github.com/samirrathod1410/playarena-gameon-hub/monitoring"
	"github.com/samirrathod1410/playarena-gameon-hub/utils"
)

const operatorChannel = "operator-bookings"

// Publisher is the realtime fan-out the notifier hands links to.
type Publisher interface {
	Publish(channel string, message map[string]any) error
}

// PubNubPublisher publishes over PubNub, same transport the admin dashboard
// subscribes to.
type PubNubPublisher struct {
	pn *pubnub.PubNub
}

func NewPubNubPublisher(pn *pubnub.PubNub) *PubNubPublisher {
	return &PubNubPublisher{pn: pn}
}

func (p *PubNubPublisher) Publish(channel string, message map[string]any) error {
	_, _, err := p.pn.Publish().
		Channel(channel).
		Message(message).
		Execute()
	return err
}

// Notifier delivers the two outbound booking notifications: the operator
// link immediately and the customer link after a configured delay, so the
// two external link activations never fire simultaneously on the client.
// Delivery is best-effort; a booking is never rolled back for a failed
// notification.
type Notifier struct {
	links         LinkBuilder
	pub           Publisher
	breaker       *utils.CircuitBreaker
	customerDelay time.Duration
}

func NewNotifier(links LinkBuilder, pub Publisher, customerDelay time.Duration) *Notifier {
	return &Notifier{
		links:         links,
		pub:           pub,
		breaker:       utils.NewCircuitBreaker("whatsapp-notify"),
		customerDelay: customerDelay,
	}
}

// NotifyBooking publishes the operator notification synchronously and
// schedules the delayed customer notification. The returned error covers
// only the operator publish; the customer leg is fire-and-forget.
func (n *Notifier) NotifyBooking(ctx context.Context, info BookingInfo, userID string) error {
	err := n.breaker.Execute(func() error {
		return n.pub.Publish(operatorChannel, map[string]any{
			"type":       "booking_created",
			"booking_id": info.BookingID,
			"turf_name":  info.TurfName,
			"date":       info.BookingDate,
			"time_slot":  info.TimeSlot,
			"link":       n.links.ForOperator(info),
		})
	})
	monitoring.TrackNotification("operator", err)
	if err != nil {
		slog.Error("operator notification failed", "bookingId", info.BookingID, "error", err)
	}

	go n.notifyCustomer(info, userID)

	return err
}

func (n *Notifier) notifyCustomer(info BookingInfo, userID string) {
	time.Sleep(n.customerDelay)

	publishErr := n.breaker.Execute(func() error {
		return n.pub.Publish("user-"+userID, map[string]any{
			"type":       "booking_received",
			"booking_id": info.BookingID,
			"status":     "Pending Confirmation",
			"link":       n.links.ForCustomer(info),
		})
	})
	monitoring.TrackNotification("customer", publishErr)
	if publishErr != nil {
		slog.Error("customer notification failed", "bookingId", info.BookingID, "error", publishErr)
	}
}
