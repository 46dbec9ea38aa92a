package billing

import (
	"net/http"
	"strconv"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/billing/model/dto"
	"hoteloncall/internal/domains/billing/service"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/failure"
	"hoteloncall/shared/validator"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/calculate-bill/{roomNumber}", handler.CalculateBill)
	router.Post("/create-checkout-session", handler.CreateCheckoutSession)
}

// CalculateBill totals room and food charges for a room's active stay.
// @Summary Calculate a room's bill
// @Description Room charge (nights times the nightly rate) plus the guest's food orders, in cents.
// @Tags Billing
// @Produce json
// @Param roomNumber path int true "Room number"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} response.Envelope
// @Router /calculate-bill/{roomNumber} [get]
func (handler *Handler) CalculateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculateBill")
	defer scope.End()

	roomNumber, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamRoomNumber))
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("roomNumber must be an integer"))

		return
	}

	res, err := handler.service.CalculateBill(ctx, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bill calculated")

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateCheckoutSession opens a hosted payment session for the room's bill.
// @Summary Create a payment session
// @Description Build an itemized payment session for the room's active stay and return its redirect URL.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckoutSessionRequest true "Create Checkout Session Request"
// @Success 200 {object} dto.CheckoutSessionResponse
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /create-checkout-session [post]
func (handler *Handler) CreateCheckoutSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckoutSession")
	defer scope.End()

	req := dto.CreateCheckoutSessionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateCheckoutSession(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create checkout session")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Checkout session created")

	response.WithJSON(writer, http.StatusOK, res)
}
