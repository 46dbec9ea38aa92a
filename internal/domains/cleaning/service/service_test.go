package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hoteloncall/config"
	"hoteloncall/infras/otel/mocks"
	pgMocks "hoteloncall/infras/postgres/mocks"
	cleaningMocks "hoteloncall/internal/domains/cleaning/mocks"
	"hoteloncall/internal/domains/cleaning/model"
	"hoteloncall/internal/domains/cleaning/model/dto"
	"hoteloncall/internal/domains/cleaning/service"
	"hoteloncall/internal/events"
	eventsMocks "hoteloncall/internal/events/mocks"
	cacheMocks "hoteloncall/shared/cache/mocks"
	"hoteloncall/shared/constant"
)

func TestCleaningService_AvailableSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTimeRepo := cleaningMocks.NewMockCleaningTime(ctrl)
	mockRequestRepo := cleaningMocks.NewMockCleaningRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockTimeRepo, mockRequestRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantSlots []string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, slots sorted chronologically",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockTimeRepo.EXPECT().
					GetAvailableSlots(gomock.Any()).
					Return([]string{"1:00 PM", "9:00 AM", "10:00 AM"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantSlots: []string{"9:00 AM", "10:00 AM", "1:00 PM"},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockTimeRepo.EXPECT().
					GetAvailableSlots(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.AvailableSlots(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantSlots != nil {
					assert.Equal(t, tt.wantSlots, result)
				}
			}
		})
	}
}

func TestCleaningService_RequestCleaning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTimeRepo := cleaningMocks.NewMockCleaningTime(ctrl)
	mockRequestRepo := cleaningMocks.NewMockCleaningRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockTimeRepo, mockRequestRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	req := dto.RequestCleaningRequest{
		GuestEmail: "guest@example.com",
		RoomNumber: 101,
		TimeSlot:   "9:00 AM",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantMsg   string
	}{
		{
			name: "successful booking",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(true, nil)

				mockRequestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "slot already taken",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(false, nil)
			},
			wantErr: true,
			wantMsg: "Time slot is no longer available.",
		},
		{
			name: "claim error",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(true, nil)

				mockRequestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RequestCleaning(context.Background(), req)

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

func TestCleaningService_FirstAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTimeRepo := cleaningMocks.NewMockCleaningTime(ctrl)
	mockRequestRepo := cleaningMocks.NewMockCleaningRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockTimeRepo, mockRequestRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantSlot  string
		wantMsg   string
	}{
		{
			name: "earliest slot claimed",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					GetAvailableSlots(gomock.Any()).
					Return([]string{"1:00 PM", "9:00 AM"}, nil)

				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(true, nil)

				mockRequestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlot: "9:00 AM",
		},
		{
			name: "falls through to the next free slot",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					GetAvailableSlots(gomock.Any()).
					Return([]string{"9:00 AM", "1:00 PM"}, nil)

				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(false, nil)

				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "1:00 PM").
					Return(true, nil)

				mockRequestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlot: "1:00 PM",
		},
		{
			name: "no slots available",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					GetAvailableSlots(gomock.Any()).
					Return(nil, nil)
			},
			wantErr: true,
			wantMsg: "No cleaning slots available.",
		},
		{
			name: "every slot claimed by someone else",
			setupMock: func() {
				mockTimeRepo.EXPECT().
					GetAvailableSlots(gomock.Any()).
					Return([]string{"9:00 AM"}, nil)

				mockTimeRepo.EXPECT().
					ClaimSlotTx(gomock.Any(), gomock.Any(), "9:00 AM").
					Return(false, nil)
			},
			wantErr: true,
			wantMsg: "No cleaning slots available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.FirstAvailable(context.Background(), "guest@example.com", 101)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, tt.wantSlot, result.TimeSlot)
			}
		})
	}
}

func TestCleaningService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTimeRepo := cleaningMocks.NewMockCleaningTime(ctrl)
	mockRequestRepo := cleaningMocks.NewMockCleaningRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockTimeRepo, mockRequestRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	request := model.CleaningRequest{
		ID:         "request-1",
		GuestEmail: "guest@example.com",
		RoomNumber: 101,
		TimeSlot:   "9:00 AM",
	}

	tests := []struct {
		name      string
		req       dto.UpdateCleaningStatusRequest
		setupMock func()
		wantErr   bool
		wantEvent bool
	}{
		{
			name: "status moved to in progress",
			req:  dto.UpdateCleaningStatusRequest{RequestID: "request-1", Status: constant.StatusInProgress},
			setupMock: func() {
				mockRequestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request, nil)

				mockRequestRepo.EXPECT().
					UpdateStatus(gomock.Any(), "request-1", constant.StatusInProgress, gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr: false,
		},
		{
			name: "completion notifies the guest",
			req:  dto.UpdateCleaningStatusRequest{RequestID: "request-1", Status: constant.StatusCompleted},
			setupMock: func() {
				mockRequestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(request, nil)

				mockRequestRepo.EXPECT().
					UpdateStatus(gomock.Any(), "request-1", constant.StatusCompleted, gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr:   false,
			wantEvent: true,
		},
		{
			name: "request not found",
			req:  dto.UpdateCleaningStatusRequest{RequestID: "missing", Status: constant.StatusCompleted},
			setupMock: func() {
				mockRequestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CleaningRequest{}, nil)

				mockRequestRepo.EXPECT().
					UpdateStatus(gomock.Any(), "missing", constant.StatusCompleted, gomock.Any()).
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
				assert.Equal(t, events.KindCleaningCompleted, published[len(published)-1].Kind)
			} else {
				assert.Len(t, published, eventsBefore)
			}
		})
	}
}

func TestCleaningService_GuestRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTimeRepo := cleaningMocks.NewMockCleaningTime(ctrl)
	mockRequestRepo := cleaningMocks.NewMockCleaningRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}

	svc := service.New(mockTimeRepo, mockRequestRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "requests found",
			setupMock: func() {
				requests := []model.CleaningRequest{
					{ID: "request-1", GuestEmail: "guest@example.com", RoomNumber: 101, TimeSlot: "9:00 AM"},
				}

				mockRequestRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(requests, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "no requests is not an error",
			setupMock: func() {
				mockRequestRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRequestRepo.EXPECT().
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
