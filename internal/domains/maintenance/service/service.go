package service

import (
	"context"
	"fmt"
	"strconv"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/maintenance/model"
	"hoteloncall/internal/domains/maintenance/model/dto"
	"hoteloncall/internal/domains/maintenance/repository"
	stayRepo "hoteloncall/internal/domains/stay/repository"
	"hoteloncall/internal/events"
	"hoteloncall/shared"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/failure"

	"github.com/rs/zerolog/log"
)

type Maintenance interface {
	RequestMaintenance(ctx context.Context, req dto.RequestMaintenanceRequest) (dto.SuccessResponse, error)
	GuestRequests(ctx context.Context, guestEmail string) ([]dto.MaintenanceRequestResponse, error)
	AllRequests(ctx context.Context) ([]dto.MaintenanceRequestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateMaintenanceStatusRequest) error
}

type serviceImpl struct {
	repo        repository.Maintenance
	checkInRepo stayRepo.CheckIn
	publisher   events.Publisher
	otel        otel.Otel
}

func New(repo repository.Maintenance, checkInRepo stayRepo.CheckIn, publisher events.Publisher, otel otel.Otel) Maintenance {
	return &serviceImpl{
		repo:        repo,
		checkInRepo: checkInRepo,
		publisher:   publisher,
		otel:        otel,
	}
}

func (s *serviceImpl) RequestMaintenance(ctx context.Context, req dto.RequestMaintenanceRequest) (res dto.SuccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestMaintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := s.checkInRepo.GetActiveByGuestEmail(ctx, req.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active check-in")

		return res, fmt.Errorf("failed to get active check-in: %w", err)
	}

	if checkIn.ID == "" {
		return res, failure.Forbidden("You must be checked in to request maintenance.")
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert maintenance request")

		return res, fmt.Errorf("failed to insert maintenance request: %w", err)
	}

	return dto.SuccessResponse{Success: true}, nil
}

func (s *serviceImpl) GuestRequests(ctx context.Context, guestEmail string) (res []dto.MaintenanceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(guestEmail, model.FieldGuestEmail, model.TableName)
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest maintenance requests")

		return res, fmt.Errorf("failed to get guest maintenance requests: %w", err)
	}

	return dto.FromModels(requests), nil
}

func (s *serviceImpl) AllRequests(ctx context.Context) (res []dto.MaintenanceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	requests, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance requests")

		return res, fmt.Errorf("failed to get maintenance requests: %w", err)
	}

	return dto.FromModels(requests), nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateMaintenanceStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.repo.Get(ctx, shared.FilterByID(req.RequestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance request")

		return fmt.Errorf("failed to get maintenance request: %w", err)
	}

	affected, err := s.repo.UpdateStatus(ctx, req.RequestID, req.Status, constant.ContextSystem)
	if err != nil {
		log.Error().Err(err).Msg("failed to update maintenance request status")

		return fmt.Errorf("failed to update maintenance request status: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("Maintenance request not found.")
	}

	if req.Status == constant.StatusResolved {
		s.publisher.Publish(ctx, events.Event{
			Kind:       events.KindMaintenanceResolved,
			GuestEmail: request.GuestEmail,
			Payload: map[string]string{
				"roomNumber": strconv.Itoa(request.RoomNumber),
				"issueType":  request.IssueType,
			},
		})
	}

	return nil
}
