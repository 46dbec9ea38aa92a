package service

import (
	"context"
	"fmt"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/order/model"
	"hoteloncall/internal/domains/order/model/dto"
	"hoteloncall/internal/domains/order/repository"
	"hoteloncall/internal/events"
	"hoteloncall/shared"
	"hoteloncall/shared/cache"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheCookOrders = "order:cook"

type Order interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (dto.PlaceOrderResponse, error)
	CheckOrders(ctx context.Context, guestEmail string) ([]dto.OrderResponse, error)
	CookQueue(ctx context.Context) ([]dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest) error
}

type serviceImpl struct {
	repo      repository.Order
	txRunner  postgres.TxRunner
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Order,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:      repo,
		txRunner:  txRunner,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (res dto.PlaceOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PlaceOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.OrderItems) == 0 {
		return res, failure.BadRequestFromString("Invalid order request.")
	}

	orders := req.ToModels()

	totalAmount := 0.0
	for _, order := range orders {
		totalAmount += order.TotalPrice
	}

	// All line items land together or not at all.
	err = s.txRunner.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.InsertBulkTx(ctx, sqltx, orders); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to place order")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCookOrders)
	}()

	return dto.PlaceOrderResponse{Success: true, TotalAmount: totalAmount}, nil
}

func (s *serviceImpl) CheckOrders(ctx context.Context, guestEmail string) (res []dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldOrderTime, SortDir: gDto.SortDirAsc}
	filter := shared.FilterByField(guestEmail, model.FieldGuestEmail, model.TableName)

	orders, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest orders")

		return res, fmt.Errorf("failed to get guest orders: %w", err)
	}

	if len(orders) == 0 {
		return res, failure.NotFound("No orders found for guest.")
	}

	return dto.FromModels(orders), nil
}

func (s *serviceImpl) CookQueue(ctx context.Context) (res []dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CookQueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheCookOrders, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheCookOrders).Msg("cache hit for cook queue")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldOrderTime, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOrderStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.StatusCompleted,
				Table:    model.TableName,
			},
		},
	}

	orders, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cook queue")

		return res, fmt.Errorf("failed to get cook queue: %w", err)
	}

	res = dto.FromModels(orders)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheCookOrders, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cook queue to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, shared.FilterByID(req.OrderID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	affected, err := s.repo.UpdateStatus(ctx, req.OrderID, req.Status, constant.ContextSystem)
	if err != nil {
		log.Error().Err(err).Msg("failed to update order status")

		return fmt.Errorf("failed to update order status: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("Order not found.")
	}

	if req.Status == constant.StatusCompleted {
		s.publisher.Publish(ctx, events.Event{
			Kind:       events.KindOrderCompleted,
			GuestEmail: order.GuestEmail,
			Payload: map[string]string{
				"foodItem": order.MenuItem,
			},
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheCookOrders)
	}()

	return nil
}
