package model

import (
	"time"

	"hoteloncall/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID          = "id"
	FieldGuestEmail  = "guest_email"
	FieldMenuItem    = "menu_item"
	FieldQuantity    = "quantity"
	FieldTotalPrice  = "total_price"
	FieldOrderStatus = "order_status"
	FieldOrderTime   = "order_time"
)

// Order is a single line item. A guest order with three dishes is three rows.
type Order struct {
	ID          string    `db:"id"`
	GuestEmail  string    `db:"guest_email"`
	MenuItem    string    `db:"menu_item"`
	Quantity    int       `db:"quantity"`
	TotalPrice  float64   `db:"total_price"`
	OrderStatus string    `db:"order_status"`
	OrderTime   time.Time `db:"order_time"`
	model.Metadata
}
