package maintenance

import (
	"net/http"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/maintenance/model/dto"
	"hoteloncall/internal/domains/maintenance/service"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/validator"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/request-maintenance", handler.RequestMaintenance)
	router.Get("/guest-maintenance/{guestEmail}", handler.GuestRequests)
	router.Get("/maintenance-requests", handler.AllRequests)
	router.Post("/update-maintenance-status", handler.UpdateStatus)
}

// RequestMaintenance files an issue for the guest's room.
// @Summary Request maintenance
// @Description File a maintenance issue; the guest must have an active check-in.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.RequestMaintenanceRequest true "Request Maintenance Request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} response.Envelope
// @Router /request-maintenance [post]
func (handler *Handler) RequestMaintenance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestMaintenance")
	defer scope.End()

	req := dto.RequestMaintenanceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RequestMaintenance(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request maintenance")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance requested")

	response.WithJSON(writer, http.StatusOK, res)
}

// GuestRequests lists the guest's maintenance requests.
// @Summary List a guest's maintenance requests
// @Tags Maintenance
// @Produce json
// @Param guestEmail path string true "Guest email"
// @Success 200 {array} dto.MaintenanceRequestResponse
// @Failure 500 {object} response.Envelope
// @Router /guest-maintenance/{guestEmail} [get]
func (handler *Handler) GuestRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuestRequests")
	defer scope.End()

	guestEmail := chi.URLParam(request, constant.RequestParamGuestEmail)

	requests, err := handler.service.GuestRequests(ctx, guestEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest maintenance requests")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest maintenance requests retrieved")

	response.WithJSON(writer, http.StatusOK, requests)
}

// AllRequests lists every maintenance request for the staff dashboard.
// @Summary List maintenance requests
// @Tags Maintenance
// @Produce json
// @Success 200 {array} dto.MaintenanceRequestResponse
// @Failure 500 {object} response.Envelope
// @Router /maintenance-requests [get]
func (handler *Handler) AllRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AllRequests")
	defer scope.End()

	requests, err := handler.service.AllRequests(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance requests")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance requests retrieved")

	response.WithJSON(writer, http.StatusOK, requests)
}

// UpdateStatus transitions a maintenance request.
// @Summary Update a maintenance request's status
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.UpdateMaintenanceStatusRequest true "Update Maintenance Status Request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} response.Envelope
// @Router /update-maintenance-status [post]
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateMaintenanceStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Maintenance status updated")

	response.WithJSON(writer, http.StatusOK, dto.SuccessResponse{Success: true})
}
