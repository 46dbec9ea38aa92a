package prediction

import (
	"net/http"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/prediction/model/dto"
	"hoteloncall/internal/domains/prediction/service"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/validator"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Prediction
	otel    otel.Otel
}

func New(service service.Prediction, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/api/guest-prediction", handler.GuestPrediction)
	router.Get("/api/demand_prediction", handler.DemandPrediction)
	router.Post("/api/chat", handler.Chat)
}

// GuestPrediction relays the occupancy forecast for a date.
// @Summary Predict guest occupancy
// @Description Proxy the upstream forecast model's response for the given date.
// @Tags Prediction
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} object
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/guest-prediction [get]
func (handler *Handler) GuestPrediction(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuestPrediction")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.GuestPrediction(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest prediction")

		response.WithErrorField(writer, err)

		return
	}

	scope.AddEvent("Guest prediction relayed")

	response.WithRaw(writer, http.StatusOK, res)
}

// DemandPrediction relays the food demand forecast, forwarding all query
// parameters unchanged.
// @Summary Predict food demand
// @Tags Prediction
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} object
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/demand_prediction [get]
func (handler *Handler) DemandPrediction(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DemandPrediction")
	defer scope.End()

	res, err := handler.service.DemandPrediction(ctx, request.URL.Query())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get demand prediction")

		response.WithErrorField(writer, err)

		return
	}

	scope.AddEvent("Demand prediction relayed")

	response.WithRaw(writer, http.StatusOK, res)
}

// Chat relays a guest message to the hosted chat model.
// @Summary Chat with the concierge model
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} dto.ChatResponse
// @Failure 502 {object} response.Error
// @Router /api/chat [post]
func (handler *Handler) Chat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithErrorField(writer, err)

		return
	}

	res, err := handler.service.Chat(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to relay chat message")

		response.WithErrorField(writer, err)

		return
	}

	scope.AddEvent("Chat response relayed")

	response.WithJSON(writer, http.StatusOK, res)
}
