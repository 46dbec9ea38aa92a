package cleaning

import (
	"net/http"
	"strconv"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/cleaning/model/dto"
	"hoteloncall/internal/domains/cleaning/service"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/failure"
	"hoteloncall/shared/validator"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cleaning
	otel    otel.Otel
}

func New(service service.Cleaning, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/available-cleaning-slots", handler.AvailableSlots)
	router.Post("/request-cleaning", handler.RequestCleaning)
	router.Get("/first-available-cleaning", handler.FirstAvailable)
	router.Get("/guest-cleaning/{guestEmail}", handler.GuestRequests)
	router.Get("/cleaning-requests", handler.OpenRequests)
	router.Post("/update-cleaning-status", handler.UpdateStatus)
}

// AvailableSlots lists open slots in chronological order.
// @Summary List available cleaning slots
// @Tags Cleaning
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} response.Envelope
// @Router /available-cleaning-slots [get]
func (handler *Handler) AvailableSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableSlots")
	defer scope.End()

	slots, err := handler.service.AvailableSlots(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning slots")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cleaning slots retrieved")

	response.WithJSON(writer, http.StatusOK, slots)
}

// RequestCleaning claims a specific slot for the guest's room.
// @Summary Request cleaning for a time slot
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param request body dto.RequestCleaningRequest true "Request Cleaning Request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} response.Envelope
// @Router /request-cleaning [post]
func (handler *Handler) RequestCleaning(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestCleaning")
	defer scope.End()

	req := dto.RequestCleaningRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RequestCleaning(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request cleaning")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cleaning requested")

	response.WithJSON(writer, http.StatusOK, res)
}

// FirstAvailable books the earliest open slot.
// @Summary Book the first available cleaning slot
// @Tags Cleaning
// @Produce json
// @Param guestEmail query string true "Guest email"
// @Param roomNumber query int true "Room number"
// @Success 200 {object} dto.FirstAvailableResponse
// @Failure 404 {object} response.Envelope
// @Router /first-available-cleaning [get]
func (handler *Handler) FirstAvailable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FirstAvailable")
	defer scope.End()

	guestEmail := request.URL.Query().Get(constant.RequestParamGuestEmail)

	roomNumber, err := strconv.Atoi(request.URL.Query().Get(constant.RequestParamRoomNumber))
	if err != nil || guestEmail == "" {
		response.WithError(writer, failure.BadRequestFromString("guestEmail and roomNumber are required"))

		return
	}

	res, err := handler.service.FirstAvailable(ctx, guestEmail, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book first available slot")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("First available slot booked")

	response.WithJSON(writer, http.StatusOK, res)
}

// GuestRequests lists the guest's cleaning requests.
// @Summary List a guest's cleaning requests
// @Tags Cleaning
// @Produce json
// @Param guestEmail path string true "Guest email"
// @Success 200 {array} dto.CleaningRequestResponse
// @Failure 500 {object} response.Envelope
// @Router /guest-cleaning/{guestEmail} [get]
func (handler *Handler) GuestRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuestRequests")
	defer scope.End()

	guestEmail := chi.URLParam(request, constant.RequestParamGuestEmail)

	requests, err := handler.service.GuestRequests(ctx, guestEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest cleaning requests")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest cleaning requests retrieved")

	response.WithJSON(writer, http.StatusOK, requests)
}

// OpenRequests lists non-completed requests for the cleaning staff.
// @Summary List open cleaning requests
// @Tags Cleaning
// @Produce json
// @Success 200 {array} dto.CleaningRequestResponse
// @Failure 500 {object} response.Envelope
// @Router /cleaning-requests [get]
func (handler *Handler) OpenRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenRequests")
	defer scope.End()

	requests, err := handler.service.OpenRequests(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get open cleaning requests")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Open cleaning requests retrieved")

	response.WithJSON(writer, http.StatusOK, requests)
}

// UpdateStatus transitions a cleaning request.
// @Summary Update a cleaning request's status
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param request body dto.UpdateCleaningStatusRequest true "Update Cleaning Status Request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} response.Envelope
// @Router /update-cleaning-status [post]
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateCleaningStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cleaning status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cleaning status updated")

	response.WithJSON(writer, http.StatusOK, dto.SuccessResponse{Success: true})
}
