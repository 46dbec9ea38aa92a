package order

import (
	"net/http"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/order/model/dto"
	"hoteloncall/internal/domains/order/service"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/validator"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/place-order", handler.PlaceOrder)
	router.Get("/check-order/{guestEmail}", handler.CheckOrders)
	router.Get("/cook/orders", handler.CookQueue)
	router.Post("/cook/update-order", handler.UpdateStatus)
	// Kept for older dashboard builds that post to the original path.
	router.Post("/update-order-status", handler.UpdateStatus)
}

// PlaceOrder records one row per ordered item.
// @Summary Place a food order
// @Description Insert one line item per dish and return the order total.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Place Order Request"
// @Success 200 {object} dto.PlaceOrderResponse
// @Failure 400 {object} response.Envelope
// @Router /place-order [post]
func (handler *Handler) PlaceOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceOrder")
	defer scope.End()

	req := dto.PlaceOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PlaceOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to place order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order placed")

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckOrders lists the guest's order line items.
// @Summary Check a guest's orders
// @Tags Order
// @Produce json
// @Param guestEmail path string true "Guest email"
// @Success 200 {array} dto.OrderResponse
// @Failure 404 {object} response.Envelope
// @Router /check-order/{guestEmail} [get]
func (handler *Handler) CheckOrders(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOrders")
	defer scope.End()

	guestEmail := chi.URLParam(request, constant.RequestParamGuestEmail)

	orders, err := handler.service.CheckOrders(ctx, guestEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest orders")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest orders retrieved")

	response.WithJSON(writer, http.StatusOK, orders)
}

// CookQueue lists open orders, oldest first.
// @Summary List the cook's queue
// @Tags Order
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} response.Envelope
// @Router /cook/orders [get]
func (handler *Handler) CookQueue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CookQueue")
	defer scope.End()

	orders, err := handler.service.CookQueue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cook queue")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cook queue retrieved")

	response.WithJSON(writer, http.StatusOK, orders)
}

// UpdateStatus transitions an order and notifies the guest on completion.
// @Summary Update an order's status
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.UpdateOrderStatusRequest true "Update Order Status Request"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /cook/update-order [post]
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateOrderStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order status updated")

	response.WithJSON(writer, http.StatusOK, response.Envelope{Success: true, Message: "Order status updated."})
}
