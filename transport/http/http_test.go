package http

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"hoteloncall/config"
	mailerMocks "hoteloncall/infras/mailer/mock"
	"hoteloncall/infras/otel/mocks"
	"hoteloncall/internal/events"
	"hoteloncall/transport/http/router"
)

func TestHTTP_CleanupDrainsNotificationQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockMailer.EXPECT().
		Send(gomock.Any(), "guest@example.com", "Your taxi is booked", gomock.Any()).
		Return(nil)

	dispatcher := events.NewDispatcher(mockMailer, mocks.NewOtel())
	dispatcher.Publish(context.Background(), events.Event{
		Kind:       events.KindTaxiBooked,
		GuestEmail: "guest@example.com",
		Payload:    map[string]string{"destination": "Airport"},
	})

	server := New(&config.Config{}, router.Router{}, dispatcher)

	server.cleanup()
}

func TestHTTP_CleanupWithoutDispatcher(t *testing.T) {
	server := New(&config.Config{}, router.Router{}, nil)

	server.cleanup()
}
