package stay

import (
	"net/http"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/stay/model/dto"
	"hoteloncall/internal/domains/stay/service"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/validator"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/checkin", handler.CheckIn)
	router.Post("/checkout", handler.Checkout)
	router.Post("/finalize-checkout", handler.FinalizeCheckout)
	router.Post("/order-taxi", handler.OrderTaxi)
}

// CheckIn books a room for a registered guest.
// @Summary Check in a guest
// @Description Book a free room for a registered guest for the given number of nights.
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in Request"
// @Success 200 {object} dto.CheckInResponse
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /checkin [post]
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest checked in")

	response.WithJSON(writer, http.StatusOK, res)
}

// Checkout ends the guest's stay and clears their open rows.
// @Summary Check out a guest
// @Description Release claimed cleaning slots, clear the guest's open requests, record the checkout and remove the check-in.
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Checkout Request"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 404 {object} response.Envelope
// @Router /checkout [post]
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	req := dto.CheckoutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Checkout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest checked out")

	response.WithJSON(writer, http.StatusOK, res)
}

// FinalizeCheckout marks the guest's active stay as paid.
// @Summary Finalize checkout payment
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.FinalizeCheckoutRequest true "Finalize Checkout Request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} response.Envelope
// @Router /finalize-checkout [post]
func (handler *Handler) FinalizeCheckout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinalizeCheckout")
	defer scope.End()

	req := dto.FinalizeCheckoutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.FinalizeCheckout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to finalize checkout")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Checkout finalized")

	response.WithJSON(writer, http.StatusOK, res)
}

// OrderTaxi books a taxi for the guest.
// @Summary Order a taxi
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.OrderTaxiRequest true "Order Taxi Request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} response.Envelope
// @Router /order-taxi [post]
func (handler *Handler) OrderTaxi(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OrderTaxi")
	defer scope.End()

	req := dto.OrderTaxiRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.OrderTaxi(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to order taxi")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Taxi ordered")

	response.WithJSON(writer, http.StatusOK, res)
}
