package model

import "hoteloncall/shared/model"

const (
	TableName  = "check_ins"
	EntityName = "check_in"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldGuestEmail    = "guest_email"
	FieldRoomNumber    = "room_number"
	FieldNights        = "nights"
	FieldPaymentStatus = "payment_status"
)

// CheckIn is an active stay. The guest email rides along from users so
// active-stay lookups by email need no second query.
type CheckIn struct {
	ID            string `db:"id"`
	GuestID       string `db:"guest_id"`
	GuestEmail    string `db:"guest_email"   table:"users" column:"email"`
	RoomNumber    int    `db:"room_number"`
	Nights        int    `db:"nights"`
	PaymentStatus string `db:"payment_status"`
	model.Metadata
}

func (CheckIn) GetJoinQuery() string {
	return "JOIN users ON users.id = check_ins.guest_id"
}
