package service

import (
	"context"
	"fmt"
	"strconv"

	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	cleaningModel "hoteloncall/internal/domains/cleaning/model"
	cleaningRepo "hoteloncall/internal/domains/cleaning/repository"
	maintenanceModel "hoteloncall/internal/domains/maintenance/model"
	maintenanceRepo "hoteloncall/internal/domains/maintenance/repository"
	orderModel "hoteloncall/internal/domains/order/model"
	orderRepo "hoteloncall/internal/domains/order/repository"
	roomModel "hoteloncall/internal/domains/room/model"
	roomRepo "hoteloncall/internal/domains/room/repository"
	roomService "hoteloncall/internal/domains/room/service"
	"hoteloncall/internal/domains/stay/model"
	"hoteloncall/internal/domains/stay/model/dto"
	"hoteloncall/internal/domains/stay/repository"
	userModel "hoteloncall/internal/domains/user/model"
	userRepo "hoteloncall/internal/domains/user/repository"
	"hoteloncall/internal/events"
	"hoteloncall/shared"
	"hoteloncall/shared/cache"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/failure"
	"hoteloncall/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheCleaningSlots = "cleaning:slots"

type Stay interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	Checkout(ctx context.Context, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	FinalizeCheckout(ctx context.Context, req dto.FinalizeCheckoutRequest) (dto.SuccessResponse, error)
	OrderTaxi(ctx context.Context, req dto.OrderTaxiRequest) (dto.SuccessResponse, error)
}

type serviceImpl struct {
	checkInRepo     repository.CheckIn
	checkoutRepo    repository.Checkout
	taxiRepo        repository.Taxi
	userRepo        userRepo.User
	roomRepo        roomRepo.Room
	orderRepo       orderRepo.Order
	cleaningTime    cleaningRepo.CleaningTime
	cleaningRequest cleaningRepo.CleaningRequest
	maintenance     maintenanceRepo.Maintenance
	txRunner        postgres.TxRunner
	publisher       events.Publisher
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	checkInRepo repository.CheckIn,
	checkoutRepo repository.Checkout,
	taxiRepo repository.Taxi,
	users userRepo.User,
	rooms roomRepo.Room,
	orders orderRepo.Order,
	cleaningTime cleaningRepo.CleaningTime,
	cleaningRequest cleaningRepo.CleaningRequest,
	maintenance maintenanceRepo.Maintenance,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Stay {
	return &serviceImpl{
		checkInRepo:     checkInRepo,
		checkoutRepo:    checkoutRepo,
		taxiRepo:        taxiRepo,
		userRepo:        users,
		roomRepo:        rooms,
		orderRepo:       orders,
		cleaningTime:    cleaningTime,
		cleaningRequest: cleaningRequest,
		maintenance:     maintenance,
		txRunner:        txRunner,
		publisher:       publisher,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.userRepo.Get(ctx, shared.FilterByField(req.GuestEmail, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest user")

		return res, fmt.Errorf("failed to get guest user: %w", err)
	}

	if guest.ID == "" || guest.UserType != constant.UserTypeGuest {
		return res, failure.NotFound("Guest is not registered.")
	}

	// The room row is locked for the duration of the transaction so two
	// concurrent check-ins for the same room serialize.
	err = s.txRunner.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByField(req.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == "" {
			return failure.NotFound("Room not found.")
		}

		occupied, err := s.checkInRepo.ExistByRoomTx(ctx, sqltx, req.RoomNumber)
		if err != nil {
			return fmt.Errorf("failed to check room occupancy: %w", err)
		}

		if occupied {
			return failure.BadRequestFromString("Room is already booked.")
		}

		if err := s.checkInRepo.InsertTx(ctx, sqltx, req.ToModel(guest.ID)); err != nil {
			return fmt.Errorf("failed to insert check-in: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check in guest")

		return res, err
	}

	s.publisher.Publish(ctx, events.Event{
		Kind:       events.KindGuestCheckedIn,
		GuestEmail: req.GuestEmail,
		Payload: map[string]string{
			"roomNumber": strconv.Itoa(req.RoomNumber),
			"nights":     strconv.Itoa(req.Nights),
		},
	})

	s.invalidateAvailability(ctx)

	return dto.CheckInResponse{
		Success:    true,
		Message:    "Check-in successful!",
		RedirectTo: constant.RedirectGuestServices,
	}, nil
}

func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := s.checkInRepo.GetActiveByGuestEmail(ctx, req.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active check-in")

		return res, fmt.Errorf("failed to get active check-in: %w", err)
	}

	if checkIn.ID == "" {
		return res, failure.NotFound("No active check-in found.")
	}

	// Slot release, dependent-row cleanup, audit insert and check-in removal
	// land atomically. A failure partway through rolls everything back.
	err = s.txRunner.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.cleaningTime.ReleaseForGuestTx(ctx, sqltx, req.GuestEmail); err != nil {
			return fmt.Errorf("failed to release cleaning slots: %w", err)
		}

		if err := s.orderRepo.DeleteTx(ctx, sqltx, shared.FilterByField(req.GuestEmail, orderModel.FieldGuestEmail, orderModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete guest orders: %w", err)
		}

		if err := s.cleaningRequest.DeleteTx(ctx, sqltx, shared.FilterByField(req.GuestEmail, cleaningModel.FieldGuestEmail, cleaningModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete cleaning requests: %w", err)
		}

		if err := s.maintenance.DeleteTx(ctx, sqltx, shared.FilterByField(req.GuestEmail, maintenanceModel.FieldGuestEmail, maintenanceModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete maintenance requests: %w", err)
		}

		if err := s.checkoutRepo.InsertTx(ctx, sqltx, req.ToCheckoutModel(checkIn.GuestID, checkIn.RoomNumber)); err != nil {
			return fmt.Errorf("failed to insert checkout record: %w", err)
		}

		if err := s.checkInRepo.DeleteTx(ctx, sqltx, shared.FilterByID(checkIn.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete check-in: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out guest")

		return res, err
	}

	s.publisher.Publish(ctx, events.Event{
		Kind:       events.KindGuestCheckedOut,
		GuestEmail: req.GuestEmail,
		Payload: map[string]string{
			"roomNumber": strconv.Itoa(checkIn.RoomNumber),
		},
	})

	s.invalidateAvailability(ctx)

	return dto.CheckoutResponse{
		Success:      true,
		Message:      "Checkout successful!",
		ClearSession: true,
	}, nil
}

func (s *serviceImpl) FinalizeCheckout(ctx context.Context, req dto.FinalizeCheckoutRequest) (res dto.SuccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FinalizeCheckout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByField(req.GuestEmail, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("User not found.")
	}

	checkIn, err := s.checkInRepo.GetActiveByGuestEmail(ctx, req.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active check-in")

		return res, fmt.Errorf("failed to get active check-in: %w", err)
	}

	if checkIn.ID == "" {
		return res, failure.NotFound("No active check-in found.")
	}

	updatedFields := map[string]any{
		model.FieldPaymentStatus: constant.PaymentStatusPaid,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: req.GuestEmail,
	}

	if err = s.checkInRepo.Update(ctx, updatedFields, shared.FilterByID(checkIn.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to finalize checkout")

		return res, fmt.Errorf("failed to finalize checkout: %w", err)
	}

	return dto.SuccessResponse{Success: true}, nil
}

func (s *serviceImpl) OrderTaxi(ctx context.Context, req dto.OrderTaxiRequest) (res dto.SuccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OrderTaxi")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByField(req.GuestEmail, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("User not found.")
	}

	if err = s.taxiRepo.Insert(ctx, req.ToModel(user.ID)); err != nil {
		log.Error().Err(err).Msg("failed to insert taxi request")

		return res, fmt.Errorf("failed to insert taxi request: %w", err)
	}

	s.publisher.Publish(ctx, events.Event{
		Kind:       events.KindTaxiBooked,
		GuestEmail: req.GuestEmail,
		Payload: map[string]string{
			"destination": req.Destination,
		},
	})

	return dto.SuccessResponse{Success: true}, nil
}

func (s *serviceImpl) invalidateAvailability(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, roomService.CacheAvailableRooms)
		shared.InvalidateCaches(c, s.cache, cacheCleaningSlots)
	}()
}
