package dto

import "hoteloncall/internal/domains/room/model"

type RoomResponse struct {
	RoomNumber int `json:"room_number"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
}

func FromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, len(models))
	for i, mod := range models {
		rooms[i].FromModel(mod)
	}

	return rooms
}
