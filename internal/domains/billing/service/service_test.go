package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteloncall/config"
	"hoteloncall/infras/otel/mocks"
	paymentMocks "hoteloncall/infras/payment/mocks"
	billingMocks "hoteloncall/internal/domains/billing/mocks"
	"hoteloncall/internal/domains/billing/model/dto"
	"hoteloncall/internal/domains/billing/service"
	stayMocks "hoteloncall/internal/domains/stay/mocks"
	stayModel "hoteloncall/internal/domains/stay/model"
)

func newBillingService(ctrl *gomock.Controller) (service.Billing, *billingMocks.MockBilling, *stayMocks.MockCheckIn, *paymentMocks.MockGateway) {
	mockRepo := billingMocks.NewMockBilling(ctrl)
	mockCheckIn := stayMocks.NewMockCheckIn(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)

	cfg := &config.Config{}
	cfg.Hotel.NightlyRate = 250
	cfg.Hotel.CleaningFee = 30
	cfg.Hotel.MaintenanceFee = 50

	svc := service.New(mockRepo, mockCheckIn, mockGateway, cfg, mocks.NewOtel())

	return svc, mockRepo, mockCheckIn, mockGateway
}

func TestBillingService_CalculateBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCheckIn, _ := newBillingService(ctrl)

	activeCheckIn := stayModel.CheckIn{
		ID:         "checkin-1",
		GuestEmail: "guest@example.com",
		RoomNumber: 101,
		Nights:     2,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantMsg   string
		wantCents int64
	}{
		{
			name: "room plus food in cents",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByRoomNumber(gomock.Any(), 101).
					Return(activeCheckIn, nil)

				mockRepo.EXPECT().
					FoodCharge(gomock.Any(), "guest@example.com").
					Return(40.0, nil)
			},
			wantErr: false,
			// 2 nights x 250 + 40 food, in cents.
			wantCents: 54000,
		},
		{
			name: "no active check-in for room",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByRoomNumber(gomock.Any(), 101).
					Return(stayModel.CheckIn{}, nil)
			},
			wantErr: true,
			wantMsg: "No active check-in found for this room.",
		},
		{
			name: "food charge error",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByRoomNumber(gomock.Any(), 101).
					Return(activeCheckIn, nil)

				mockRepo.EXPECT().
					FoodCharge(gomock.Any(), "guest@example.com").
					Return(0.0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.CalculateBill(context.Background(), 101)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, tt.wantCents, result.TotalBillCents)
			}
		})
	}
}

func TestBillingService_CreateCheckoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCheckIn, mockGateway := newBillingService(ctrl)

	activeCheckIn := stayModel.CheckIn{
		ID:         "checkin-1",
		GuestEmail: "guest@example.com",
		RoomNumber: 101,
		Nights:     2,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantMsg   string
	}{
		{
			name: "session created with itemized charges",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByRoomNumber(gomock.Any(), 101).
					Return(activeCheckIn, nil)

				mockRepo.EXPECT().
					FoodCharge(gomock.Any(), "guest@example.com").
					Return(40.0, nil)

				mockRepo.EXPECT().
					CleaningCount(gomock.Any(), "guest@example.com").
					Return(2, nil)

				mockRepo.EXPECT().
					MaintenanceCount(gomock.Any(), "guest@example.com").
					Return(1, nil)

				mockGateway.EXPECT().
					CreateCheckoutSession(gomock.Any(), "guest@example.com", gomock.Len(4)).
					Return("sess_123", "https://checkout.stripe.com/pay/sess_123", nil)
			},
			wantErr: false,
		},
		{
			name: "no active check-in for room",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByRoomNumber(gomock.Any(), 101).
					Return(stayModel.CheckIn{}, nil)
			},
			wantErr: true,
			wantMsg: "No active check-in found for this room.",
		},
		{
			name: "gateway failure",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByRoomNumber(gomock.Any(), 101).
					Return(activeCheckIn, nil)

				mockRepo.EXPECT().
					FoodCharge(gomock.Any(), "guest@example.com").
					Return(40.0, nil)

				mockRepo.EXPECT().
					CleaningCount(gomock.Any(), "guest@example.com").
					Return(0, nil)

				mockRepo.EXPECT().
					MaintenanceCount(gomock.Any(), "guest@example.com").
					Return(0, nil)

				mockGateway.EXPECT().
					CreateCheckoutSession(gomock.Any(), "guest@example.com", gomock.Any()).
					Return("", "", errors.New("stripe unavailable"))
			},
			wantErr: true,
			wantMsg: "Failed to create payment session.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.CreateCheckoutSession(context.Background(), dto.CreateCheckoutSessionRequest{RoomNumber: 101})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, "sess_123", result.SessionID)
				assert.NotEmpty(t, result.URL)
			}
		})
	}
}
