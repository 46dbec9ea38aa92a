package events_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	mailerMocks "hoteloncall/infras/mailer/mock"
	"hoteloncall/infras/otel/mocks"
	"hoteloncall/internal/events"
)

func TestDispatcher_DeliversNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	tests := []struct {
		name        string
		event       events.Event
		wantSubject string
		wantBody    string
	}{
		{
			name: "check-in welcome",
			event: events.Event{
				Kind:       events.KindGuestCheckedIn,
				GuestEmail: "guest@example.com",
				Payload:    map[string]string{"roomNumber": "101", "nights": "2"},
			},
			wantSubject: "Welcome to HotelOnCall",
			wantBody:    "Welcome! You are checked in to room 101 for 2 night(s). We hope you enjoy your stay.",
		},
		{
			name: "order ready",
			event: events.Event{
				Kind:       events.KindOrderCompleted,
				GuestEmail: "guest@example.com",
				Payload:    map[string]string{"foodItem": "Pizza"},
			},
			wantSubject: "Your food order is ready",
			wantBody:    "Your order of Pizza has been completed and will be delivered shortly.",
		},
		{
			name: "verification code",
			event: events.Event{
				Kind:       events.KindVerificationCode,
				GuestEmail: "guest@example.com",
				Payload:    map[string]string{"code": "123456", "ttlMinutes": "15"},
			},
			wantSubject: "Your password reset code",
			wantBody:    "Your verification code is 123456. It expires in 15 minutes.",
		},
		{
			name: "taxi booked",
			event: events.Event{
				Kind:       events.KindTaxiBooked,
				GuestEmail: "guest@example.com",
				Payload:    map[string]string{"destination": "Airport"},
			},
			wantSubject: "Your taxi is booked",
			wantBody:    "Your taxi request has been received. Destination: Airport.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMailer.EXPECT().
				Send(gomock.Any(), "guest@example.com", tt.wantSubject, tt.wantBody).
				Return(nil)

			dispatcher := events.NewDispatcher(mockMailer, mocks.NewOtel())
			dispatcher.Publish(context.Background(), tt.event)

			// Close drains the queue, so Send has run by the time it returns.
			dispatcher.Close()
		})
	}
}

func TestDispatcher_SkipsUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	dispatcher := events.NewDispatcher(mockMailer, mocks.NewOtel())
	dispatcher.Publish(context.Background(), events.Event{Kind: "unknown", GuestEmail: "guest@example.com"})
	dispatcher.Close()
}

func TestDispatcher_SendFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockMailer.EXPECT().
		Send(gomock.Any(), "guest@example.com", gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unavailable"))

	dispatcher := events.NewDispatcher(mockMailer, mocks.NewOtel())
	dispatcher.Publish(context.Background(), events.Event{
		Kind:       events.KindGuestCheckedOut,
		GuestEmail: "guest@example.com",
		Payload:    map[string]string{"roomNumber": "101"},
	})
	dispatcher.Close()
}
