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
	orderMocks "hoteloncall/internal/domains/order/mocks"
	"hoteloncall/internal/domains/order/model"
	"hoteloncall/internal/domains/order/model/dto"
	"hoteloncall/internal/domains/order/service"
	"hoteloncall/internal/events"
	eventsMocks "hoteloncall/internal/events/mocks"
	cacheMocks "hoteloncall/shared/cache/mocks"
	"hoteloncall/shared/constant"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.PlaceOrderRequest
		setupMock func()
		wantErr   bool
		wantTotal float64
	}{
		{
			name: "successful order",
			req: dto.PlaceOrderRequest{
				GuestEmail: "guest@example.com",
				OrderItems: []dto.OrderItem{
					{Name: "Pizza", Price: 20, Quantity: 2},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 40,
		},
		{
			name: "multiple items sum per line",
			req: dto.PlaceOrderRequest{
				GuestEmail: "guest@example.com",
				OrderItems: []dto.OrderItem{
					{Name: "Pizza", Price: 20, Quantity: 2},
					{Name: "Coke", Price: 5, Quantity: 1},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 45,
		},
		{
			name: "empty order is rejected",
			req: dto.PlaceOrderRequest{
				GuestEmail: "guest@example.com",
			},
			setupMock: func() {
				// Rejected before touching the repository.
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.PlaceOrderRequest{
				GuestEmail: "guest@example.com",
				OrderItems: []dto.OrderItem{
					{Name: "Pizza", Price: 20, Quantity: 1},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.PlaceOrder(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, tt.wantTotal, result.TotalAmount)
			}
		})
	}
}

func TestOrderService_CheckOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "orders found",
			setupMock: func() {
				orders := []model.Order{
					{ID: "order-1", GuestEmail: "guest@example.com", MenuItem: "Pizza", Quantity: 2, TotalPrice: 40, OrderStatus: constant.StatusPending},
					{ID: "order-2", GuestEmail: "guest@example.com", MenuItem: "Coke", Quantity: 1, TotalPrice: 5, OrderStatus: constant.StatusCompleted},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(orders, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "no orders for guest",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: true,
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

			result, err := svc.CheckOrders(context.Background(), "guest@example.com")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestOrderService_CheckOrdersNotFoundMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mocks.NewOtel())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, err := svc.CheckOrders(context.Background(), "guest@example.com")
	assert.EqualError(t, err, "No orders found for guest.")
}

func TestOrderService_CookQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
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
			name: "cache miss, queue from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				orders := []model.Order{
					{ID: "order-1", GuestEmail: "guest@example.com", MenuItem: "Pizza", OrderStatus: constant.StatusPending},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(orders, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

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

			_, err := svc.CookQueue(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	publisher := eventsMocks.NewPublisher()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), publisher, cfg, mockCache, mockOtel)

	order := model.Order{
		ID:         "order-1",
		GuestEmail: "guest@example.com",
		MenuItem:   "Pizza",
	}

	tests := []struct {
		name      string
		req       dto.UpdateOrderStatusRequest
		setupMock func()
		wantErr   bool
		wantEvent bool
	}{
		{
			name: "status moved to in progress",
			req:  dto.UpdateOrderStatusRequest{OrderID: "order-1", Status: constant.StatusInProgress},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "order-1", constant.StatusInProgress, gomock.Any()).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "completion notifies the guest",
			req:  dto.UpdateOrderStatusRequest{OrderID: "order-1", Status: constant.StatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "order-1", constant.StatusCompleted, gomock.Any()).
					Return(int64(1), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantEvent: true,
		},
		{
			name: "order not found",
			req:  dto.UpdateOrderStatusRequest{OrderID: "missing", Status: constant.StatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "missing", constant.StatusCompleted, gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateOrderStatusRequest{OrderID: "order-1", Status: constant.StatusCompleted},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), "order-1", constant.StatusCompleted, gomock.Any()).
					Return(int64(0), errors.New("database error"))
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
				assert.Equal(t, events.KindOrderCompleted, published[len(published)-1].Kind)
				assert.Equal(t, "guest@example.com", published[len(published)-1].GuestEmail)
			} else {
				assert.Len(t, published, eventsBefore)
			}
		})
	}
}
