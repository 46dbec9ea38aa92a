package service

import (
	"context"
	"fmt"
	"math"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/infras/payment"
	"hoteloncall/internal/domains/billing/model/dto"
	"hoteloncall/internal/domains/billing/repository"
	stayRepo "hoteloncall/internal/domains/stay/repository"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/failure"

	"github.com/rs/zerolog/log"
)

type Billing interface {
	CalculateBill(ctx context.Context, roomNumber int) (dto.BillResponse, error)
	CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (dto.CheckoutSessionResponse, error)
}

type serviceImpl struct {
	repo        repository.Billing
	checkInRepo stayRepo.CheckIn
	gateway     payment.Gateway
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Billing, checkInRepo stayRepo.CheckIn, gateway payment.Gateway, cfg *config.Config, otel otel.Otel) Billing {
	return &serviceImpl{
		repo:        repo,
		checkInRepo: checkInRepo,
		gateway:     gateway,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) CalculateBill(ctx context.Context, roomNumber int) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := s.checkInRepo.GetActiveByRoomNumber(ctx, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active check-in")

		return res, fmt.Errorf("failed to get active check-in: %w", err)
	}

	if checkIn.ID == "" {
		return res, failure.NotFound("No active check-in found for this room.")
	}

	roomCharge := float64(checkIn.Nights) * float64(s.cfg.Hotel.NightlyRate)

	foodCharge, err := s.repo.FoodCharge(ctx, checkIn.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum food charges")

		return res, fmt.Errorf("failed to sum food charges: %w", err)
	}

	total := roomCharge + foodCharge

	return dto.BillResponse{
		Success:        true,
		TotalBillCents: int64(math.Round(total * 100)),
	}, nil
}

func (s *serviceImpl) CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (res dto.CheckoutSessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := s.checkInRepo.GetActiveByRoomNumber(ctx, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active check-in")

		return res, fmt.Errorf("failed to get active check-in: %w", err)
	}

	if checkIn.ID == "" {
		return res, failure.NotFound("No active check-in found for this room.")
	}

	roomCharge := float64(checkIn.Nights) * float64(s.cfg.Hotel.NightlyRate)

	foodCharge, err := s.repo.FoodCharge(ctx, checkIn.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum food charges")

		return res, fmt.Errorf("failed to sum food charges: %w", err)
	}

	cleaningCount, err := s.repo.CleaningCount(ctx, checkIn.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cleaning requests")

		return res, fmt.Errorf("failed to count cleaning requests: %w", err)
	}

	maintenanceCount, err := s.repo.MaintenanceCount(ctx, checkIn.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance requests")

		return res, fmt.Errorf("failed to count maintenance requests: %w", err)
	}

	cleaningCharge := float64(cleaningCount) * float64(s.cfg.Hotel.CleaningFee)
	maintenanceCharge := float64(maintenanceCount) * float64(s.cfg.Hotel.MaintenanceFee)

	items := []payment.LineItem{
		{Name: fmt.Sprintf("Room charge (%d nights)", checkIn.Nights), AmountCents: toCents(roomCharge), Quantity: 1},
		{Name: "Food orders", AmountCents: toCents(foodCharge), Quantity: 1},
		{Name: "Cleaning services", AmountCents: toCents(cleaningCharge), Quantity: 1},
		{Name: "Maintenance services", AmountCents: toCents(maintenanceCharge), Quantity: 1},
	}

	sessionID, url, err := s.gateway.CreateCheckoutSession(ctx, checkIn.GuestEmail, items)
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment session")

		return res, failure.BadGateway("Failed to create payment session.")
	}

	return dto.CheckoutSessionResponse{
		Success:   true,
		SessionID: sessionID,
		URL:       url,
	}, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
