package dto

import (
	"hoteloncall/internal/domains/stay/model"
	"hoteloncall/shared/constant"
	gModel "hoteloncall/shared/model"
	"hoteloncall/shared/timezone"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	RoomNumber int    `json:"roomNumber" validate:"required,gte=1"`
	Nights     int    `json:"nights"     validate:"required,gte=1"`
}

func (r *CheckInRequest) ToModel(guestID string) model.CheckIn {
	return model.CheckIn{
		ID:            uuid.NewString(),
		GuestID:       guestID,
		RoomNumber:    r.RoomNumber,
		Nights:        r.Nights,
		PaymentStatus: constant.PaymentStatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.GuestEmail,
			ModifiedBy: r.GuestEmail,
		},
	}
}

type CheckInResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

type CheckoutRequest struct {
	GuestEmail string  `json:"guestEmail" validate:"required,email"`
	Feedback   *string `json:"feedback,omitempty"`
}

func (r *CheckoutRequest) ToCheckoutModel(guestID string, roomNumber int) model.Checkout {
	return model.Checkout{
		ID:           uuid.NewString(),
		GuestID:      guestID,
		RoomNumber:   roomNumber,
		CheckoutTime: timezone.Now(),
		Feedback:     r.Feedback,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.GuestEmail,
			ModifiedBy: r.GuestEmail,
		},
	}
}

type CheckoutResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ClearSession bool   `json:"clearSession"`
}

type FinalizeCheckoutRequest struct {
	GuestEmail string `json:"guestEmail" validate:"required,email"`
}

type OrderTaxiRequest struct {
	GuestEmail  string `json:"guestEmail"  validate:"required,email"`
	Destination string `json:"destination" validate:"omitempty"`
}

func (r *OrderTaxiRequest) ToModel(guestID string) model.Taxi {
	return model.Taxi{
		ID:          uuid.NewString(),
		GuestID:     guestID,
		Destination: r.Destination,
		Notified:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.GuestEmail,
			ModifiedBy: r.GuestEmail,
		},
	}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
