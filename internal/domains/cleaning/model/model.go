package model

import "hoteloncall/shared/model"

const (
	TimeTableName  = "cleaning_times"
	TimeEntityName = "cleaning_time"

	TimeFieldID        = "id"
	TimeFieldTimeSlot  = "time_slot"
	TimeFieldAvailable = "available"
)

// CleaningTime is a bookable housekeeping slot. Slots are free-text like
// "10:00 AM"; ordering happens at read time, not in the schema.
type CleaningTime struct {
	ID        string `db:"id"`
	TimeSlot  string `db:"time_slot"`
	Available bool   `db:"available"`
	model.Metadata
}

const (
	TableName  = "cleaning_requests"
	EntityName = "cleaning_request"

	FieldID            = "id"
	FieldGuestEmail    = "guest_email"
	FieldRoomNumber    = "room_number"
	FieldTimeSlot      = "time_slot"
	FieldRequestStatus = "request_status"
)

type CleaningRequest struct {
	ID            string `db:"id"`
	GuestEmail    string `db:"guest_email"`
	RoomNumber    int    `db:"room_number"`
	TimeSlot      string `db:"time_slot"`
	RequestStatus string `db:"request_status"`
	model.Metadata
}
