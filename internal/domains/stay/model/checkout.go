package model

import (
	"time"

	"hoteloncall/shared/model"
)

const (
	CheckoutTableName  = "checkouts"
	CheckoutEntityName = "checkout"

	CheckoutFieldID           = "id"
	CheckoutFieldGuestID      = "guest_id"
	CheckoutFieldRoomNumber   = "room_number"
	CheckoutFieldCheckoutTime = "checkout_time"
	CheckoutFieldFeedback     = "feedback"
)

// Checkout is an append-only audit row, one per checkout event.
type Checkout struct {
	ID           string    `db:"id"`
	GuestID      string    `db:"guest_id"`
	RoomNumber   int       `db:"room_number"`
	CheckoutTime time.Time `db:"checkout_time"`
	Feedback     *string   `db:"feedback"`
	model.Metadata
}
