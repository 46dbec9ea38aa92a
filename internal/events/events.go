package events

import (
	"context"
	"fmt"

	"hoteloncall/infras/mailer"
	"hoteloncall/infras/otel"
	"hoteloncall/shared/constant"

	"github.com/rs/zerolog/log"
)

// Kind identifies a guest-facing notification.
type Kind string

const (
	KindGuestCheckedIn      Kind = "guest.checked_in"
	KindGuestCheckedOut     Kind = "guest.checked_out"
	KindOrderCompleted      Kind = "order.completed"
	KindCleaningCompleted   Kind = "cleaning.completed"
	KindMaintenanceResolved Kind = "maintenance.resolved"
	KindTaxiBooked          Kind = "taxi.booked"
	KindVerificationCode    Kind = "verification.code"
)

// Event carries everything needed to notify a guest by email. Payload holds
// kind-specific values referenced by the message templates.
type Event struct {
	Kind       Kind
	GuestEmail string
	Payload    map[string]string
}

// Publisher hands events to the notification worker without blocking the
// request path. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type Dispatcher struct {
	mailer mailer.Mailer
	otel   otel.Otel
	queue  chan Event
	done   chan struct{}
}

const queueSize = 128

func NewDispatcher(mlr mailer.Mailer, otl otel.Otel) *Dispatcher {
	dispatcher := &Dispatcher{
		mailer: mlr,
		otel:   otl,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go dispatcher.run()

	return dispatcher
}

func (d *Dispatcher) Publish(ctx context.Context, event Event) {
	_, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish."+string(event.Kind))
	defer scope.End()

	select {
	case d.queue <- event:
	default:
		log.Warn().
			Str("kind", string(event.Kind)).
			Str("guestEmail", event.GuestEmail).
			Msg("Notification queue full, dropping event")
	}
}

// Close stops the worker after draining queued events.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.queue {
		subject, body := compose(event)
		if subject == "" {
			log.Warn().Str("kind", string(event.Kind)).Msg("Unknown notification kind, skipping")

			continue
		}

		if err := d.mailer.Send(context.Background(), event.GuestEmail, subject, body); err != nil {
			log.Error().
				Err(err).
				Str("kind", string(event.Kind)).
				Str("guestEmail", event.GuestEmail).
				Msg("Failed to send notification email")
		}
	}
}

func compose(event Event) (subject, body string) {
	payload := event.Payload
	if payload == nil {
		payload = map[string]string{}
	}

	switch event.Kind {
	case KindGuestCheckedIn:
		return "Welcome to HotelOnCall",
			fmt.Sprintf("Welcome! You are checked in to room %s for %s night(s). We hope you enjoy your stay.",
				payload["roomNumber"], payload["nights"])
	case KindGuestCheckedOut:
		return "Thank you for staying with us",
			fmt.Sprintf("You have checked out of room %s. We hope to see you again.",
				payload["roomNumber"])
	case KindOrderCompleted:
		return "Your food order is ready",
			fmt.Sprintf("Your order of %s has been completed and will be delivered shortly.",
				payload["foodItem"])
	case KindCleaningCompleted:
		return "Room cleaning completed",
			fmt.Sprintf("The cleaning of room %s scheduled at %s has been completed.",
				payload["roomNumber"], payload["cleaningTime"])
	case KindMaintenanceResolved:
		return "Maintenance request resolved",
			fmt.Sprintf("Your maintenance request for room %s (%s) has been resolved.",
				payload["roomNumber"], payload["issueType"])
	case KindTaxiBooked:
		return "Your taxi is booked",
			fmt.Sprintf("Your taxi request has been received. Destination: %s.",
				payload["destination"])
	case KindVerificationCode:
		return "Your password reset code",
			fmt.Sprintf("Your verification code is %s. It expires in %s minutes.",
				payload["code"], payload["ttlMinutes"])
	}

	return "", ""
}
