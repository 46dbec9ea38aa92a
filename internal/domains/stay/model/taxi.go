package model

import "hoteloncall/shared/model"

const (
	TaxiTableName  = "taxi"
	TaxiEntityName = "taxi"

	TaxiFieldID          = "id"
	TaxiFieldGuestID     = "guest_id"
	TaxiFieldDestination = "destination"
	TaxiFieldNotified    = "notified"
)

type Taxi struct {
	ID          string `db:"id"`
	GuestID     string `db:"guest_id"`
	Destination string `db:"destination"`
	Notified    bool   `db:"notified"`
	model.Metadata
}
