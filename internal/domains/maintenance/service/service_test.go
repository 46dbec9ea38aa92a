package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteloncall/infras/otel/mocks"
	maintenanceMocks "hoteloncall/internal/domains/maintenance/mocks"
	"hoteloncall/internal/domains/maintenance/model"
	"hoteloncall/internal/domains/maintenance/model/dto"
	"hoteloncall/internal/domains/maintenance/service"
	stayMocks "hoteloncall/internal/domains/stay/mocks"
	stayModel "hoteloncall/internal/domains/stay/model"
	"hoteloncall/internal/events"
	eventsMocks "hoteloncall/internal/events/mocks"
	"hoteloncall/shared/constant"
)

func TestMaintenanceService_RequestMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCheckIn := stayMocks.NewMockCheckIn(ctrl)
	publisher := eventsMocks.NewPublisher()

	svc := service.New(mockRepo, mockCheckIn, publisher, mocks.NewOtel())

	req := dto.RequestMaintenanceRequest{
		GuestEmail: "guest@example.com",
		RoomNumber: 101,
		IssueType:  "AC",
		Details:    "Not cooling",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantMsg   string
	}{
		{
			name: "request accepted",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByGuestEmail(gomock.Any(), "guest@example.com").
					Return(stayModel.CheckIn{ID: "checkin-1", RoomNumber: 101}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "guest not checked in",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByGuestEmail(gomock.Any(), "guest@example.com").
					Return(stayModel.CheckIn{}, nil)
			},
			wantErr: true,
			wantMsg: "You must be checked in to request maintenance.",
		},
		{
			name: "insert error",
			setupMock: func() {
				mockCheckIn.EXPECT().
					GetActiveByGuestEmail(gomock.Any(), "guest@example.com").
					Return(stayModel.CheckIn{ID: "checkin-1", RoomNumber: 101}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RequestMaintenance(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
			}
		})
	}
}

func TestMaintenanceService_GuestRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCheckIn := stayMocks.NewMockCheckIn(ctrl)
	publisher := eventsMocks.NewPublisher()

	svc := service.New(mockRepo, mockCheckIn, publisher, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "requests found",
			setupMock: func() {
				requests := []model.MaintenanceRequest{
					{ID: "request-1", GuestEmail: "guest@example.com", RoomNumber: 101, IssueType: "AC", RequestStatus: constant.StatusPending},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(requests, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "no requests is not an error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GuestRequests(context.Background(), "guest@example.com")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestMaintenanceService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := maintenanceMocks.NewMockMaintenance(ctrl)
	mockCheckIn := stayMocks.NewMockCheckIn(ctrl)
	publisher := eventsMocks.NewPublisher()

	svc := service.New(mockRepo, mockCheckIn, publisher, mocks.NewOtel())

	request := model.MaintenanceRequest{
		ID:         "request-1",
		GuestEmail: "guest@example.com",
		RoomNumber: 101,
		IssueType:  "AC",
	}

	tests := []struct {
		name      string
		req       dto.UpdateMaintenanceStatusRequest
		setupMock func()
		wantErr   bool
		wantEvent bool
	}{
		{
			name: "resolution notifies the guest",
			req:  dto.UpdateMaintenanceStatusRequest{RequestID: "request-1", Status: constant.StatusResolved},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "request-1", constant.StatusResolved, gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr:   false,
			wantEvent: true,
		},
		{
			name: "back to pending publishes nothing",
			req:  dto.UpdateMaintenanceStatusRequest{RequestID: "request-1", Status: constant.StatusPending},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "request-1", constant.StatusPending, gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr: false,
		},
		{
			name: "request not found",
			req:  dto.UpdateMaintenanceStatusRequest{RequestID: "missing", Status: constant.StatusResolved},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MaintenanceRequest{}, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "missing", constant.StatusResolved, gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			eventsBefore := len(publisher.Events())
			err := svc.UpdateStatus(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			published := publisher.Events()
			if tt.wantEvent {
				assert.Len(t, published, eventsBefore+1)
				assert.Equal(t, events.KindMaintenanceResolved, published[len(published)-1].Kind)
			} else {
				assert.Len(t, published, eventsBefore)
			}
		})
	}
}
