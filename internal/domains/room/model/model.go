package model

import "hoteloncall/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber int    `db:"room_number"`
	model.Metadata
}
