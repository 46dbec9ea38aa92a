package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	"hoteloncall/internal/domains/cleaning/model"
	"hoteloncall/internal/domains/cleaning/model/dto"
	"hoteloncall/internal/domains/cleaning/repository"
	"hoteloncall/internal/events"
	"hoteloncall/shared"
	"hoteloncall/shared/cache"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheAvailableSlots = "cleaning:slots"

type Cleaning interface {
	AvailableSlots(ctx context.Context) ([]string, error)
	RequestCleaning(ctx context.Context, req dto.RequestCleaningRequest) (dto.SuccessResponse, error)
	FirstAvailable(ctx context.Context, guestEmail string, roomNumber int) (dto.FirstAvailableResponse, error)
	GuestRequests(ctx context.Context, guestEmail string) ([]dto.CleaningRequestResponse, error)
	OpenRequests(ctx context.Context) ([]dto.CleaningRequestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateCleaningStatusRequest) error
}

type serviceImpl struct {
	timeRepo    repository.CleaningTime
	requestRepo repository.CleaningRequest
	txRunner    postgres.TxRunner
	publisher   events.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	timeRepo repository.CleaningTime,
	requestRepo repository.CleaningRequest,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Cleaning {
	return &serviceImpl{
		timeRepo:    timeRepo,
		requestRepo: requestRepo,
		txRunner:    txRunner,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) AvailableSlots(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheAvailableSlots, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheAvailableSlots).Msg("cache hit for cleaning slots")

		return res, nil
	}

	slots, err := s.timeRepo.GetAvailableSlots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning slots")

		return res, fmt.Errorf("failed to get cleaning slots: %w", err)
	}

	sortSlots(slots)
	res = slots

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAvailableSlots, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cleaning slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) RequestCleaning(ctx context.Context, req dto.RequestCleaningRequest) (res dto.SuccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestCleaning")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.txRunner.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		claimed, err := s.timeRepo.ClaimSlotTx(ctx, sqltx, req.TimeSlot)
		if err != nil {
			return fmt.Errorf("failed to claim cleaning slot: %w", err)
		}

		if !claimed {
			return failure.BadRequestFromString("Time slot is no longer available.")
		}

		if err := s.requestRepo.InsertTx(ctx, sqltx, req.ToModel()); err != nil {
			return fmt.Errorf("failed to insert cleaning request: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to request cleaning")

		return res, err
	}

	s.invalidateSlots(ctx)

	return dto.SuccessResponse{Success: true}, nil
}

func (s *serviceImpl) FirstAvailable(ctx context.Context, guestEmail string, roomNumber int) (res dto.FirstAvailableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FirstAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	slots, err := s.timeRepo.GetAvailableSlots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning slots")

		return res, fmt.Errorf("failed to get cleaning slots: %w", err)
	}

	if len(slots) == 0 {
		return res, failure.NotFound("No cleaning slots available.")
	}

	sortSlots(slots)

	var claimedSlot string

	err = s.txRunner.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		for _, slot := range slots {
			claimed, err := s.timeRepo.ClaimSlotTx(ctx, sqltx, slot)
			if err != nil {
				return fmt.Errorf("failed to claim cleaning slot: %w", err)
			}

			if !claimed {
				continue
			}

			request := dto.RequestCleaningRequest{
				GuestEmail: guestEmail,
				RoomNumber: roomNumber,
				TimeSlot:   slot,
			}

			if err := s.requestRepo.InsertTx(ctx, sqltx, request.ToModel()); err != nil {
				return fmt.Errorf("failed to insert cleaning request: %w", err)
			}

			claimedSlot = slot

			return nil
		}

		return failure.NotFound("No cleaning slots available.")
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to book first available cleaning slot")

		return res, err
	}

	s.invalidateSlots(ctx)

	return dto.FirstAvailableResponse{Success: true, TimeSlot: claimedSlot}, nil
}

func (s *serviceImpl) GuestRequests(ctx context.Context, guestEmail string) (res []dto.CleaningRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(guestEmail, model.FieldGuestEmail, model.TableName)
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	requests, err := s.requestRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest cleaning requests")

		return res, fmt.Errorf("failed to get guest cleaning requests: %w", err)
	}

	return dto.FromModels(requests), nil
}

func (s *serviceImpl) OpenRequests(ctx context.Context) (res []dto.CleaningRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequestStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.StatusCompleted,
				Table:    model.TableName,
			},
		},
	}
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	requests, err := s.requestRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get open cleaning requests")

		return res, fmt.Errorf("failed to get open cleaning requests: %w", err)
	}

	return dto.FromModels(requests), nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateCleaningStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.requestRepo.Get(ctx, shared.FilterByID(req.RequestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning request")

		return fmt.Errorf("failed to get cleaning request: %w", err)
	}

	affected, err := s.requestRepo.UpdateStatus(ctx, req.RequestID, req.Status, constant.ContextSystem)
	if err != nil {
		log.Error().Err(err).Msg("failed to update cleaning request status")

		return fmt.Errorf("failed to update cleaning request status: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("Cleaning request not found.")
	}

	if req.Status == constant.StatusCompleted {
		s.publisher.Publish(ctx, events.Event{
			Kind:       events.KindCleaningCompleted,
			GuestEmail: request.GuestEmail,
			Payload: map[string]string{
				"roomNumber":   strconv.Itoa(request.RoomNumber),
				"cleaningTime": request.TimeSlot,
			},
		})
	}

	return nil
}

func (s *serviceImpl) invalidateSlots(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailableSlots)
	}()
}

// sortSlots orders free-text slots like "10:00 AM" chronologically, AM
// before PM. Slots that fail to parse sink to the end.
func sortSlots(slots []string) {
	sort.SliceStable(slots, func(i, j int) bool {
		left, errLeft := time.Parse(constant.SlotTimeFormat, slots[i])
		right, errRight := time.Parse(constant.SlotTimeFormat, slots[j])

		if errLeft != nil || errRight != nil {
			if errLeft == nil {
				return true
			}

			if errRight == nil {
				return false
			}

			return slots[i] < slots[j]
		}

		return left.Before(right)
	})
}
