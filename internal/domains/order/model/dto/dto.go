package dto

import (
	"hoteloncall/internal/domains/order/model"
	"hoteloncall/shared/constant"
	gModel "hoteloncall/shared/model"
	"hoteloncall/shared/timezone"

	"github.com/google/uuid"
)

type OrderItem struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gte=0"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
}

type PlaceOrderRequest struct {
	GuestEmail string      `json:"guestEmail" validate:"required,email"`
	OrderItems []OrderItem `json:"orderItems" validate:"omitempty,dive"`
}

func (r *PlaceOrderRequest) ToModels() []model.Order {
	now := timezone.Now()
	orders := make([]model.Order, len(r.OrderItems))

	for i, item := range r.OrderItems {
		orders[i] = model.Order{
			ID:          uuid.NewString(),
			GuestEmail:  r.GuestEmail,
			MenuItem:    item.Name,
			Quantity:    item.Quantity,
			TotalPrice:  item.Price * float64(item.Quantity),
			OrderStatus: constant.StatusPending,
			OrderTime:   now,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  r.GuestEmail,
				ModifiedBy: r.GuestEmail,
			},
		}
	}

	return orders
}

type PlaceOrderResponse struct {
	Success     bool    `json:"success"`
	TotalAmount float64 `json:"totalAmount"`
}

type OrderResponse struct {
	ID          string  `json:"id"`
	GuestEmail  string  `json:"guest_email"`
	MenuItem    string  `json:"menu_item"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
	OrderStatus string  `json:"order_status"`
	OrderTime   string  `json:"order_time"`
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.GuestEmail = model.GuestEmail
	r.MenuItem = model.MenuItem
	r.Quantity = model.Quantity
	r.TotalPrice = model.TotalPrice
	r.OrderStatus = model.OrderStatus
	r.OrderTime = timezone.Format(model.OrderTime, constant.DateFormat)
}

func FromModels(models []model.Order) []OrderResponse {
	orders := make([]OrderResponse, len(models))
	for i, mod := range models {
		orders[i].FromModel(mod)
	}

	return orders
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status"  validate:"required,oneof=Pending 'In Progress' Completed"`
}
