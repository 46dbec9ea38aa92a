package room

import (
	"net/http"

	"hoteloncall/infras/otel"
	"hoteloncall/internal/domains/room/service"
	"hoteloncall/shared/constant"
	"hoteloncall/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/available-rooms", handler.AvailableRooms)
}

// AvailableRooms lists rooms with no active check-in.
// @Summary List available rooms
// @Description Rooms that no active check-in references, ordered by room number.
// @Tags Room
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Envelope
// @Router /available-rooms [get]
func (handler *Handler) AvailableRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableRooms")
	defer scope.End()

	rooms, err := handler.service.AvailableRooms(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Available rooms retrieved")

	response.WithJSON(writer, http.StatusOK, rooms)
}
