package dto

import (
	"hoteloncall/internal/domains/cleaning/model"
	"hoteloncall/shared/constant"
	gModel "hoteloncall/shared/model"
	"hoteloncall/shared/timezone"

	"github.com/google/uuid"
)

type RequestCleaningRequest struct {
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	RoomNumber int    `json:"roomNumber" validate:"required,gte=1"`
	TimeSlot   string `json:"timeSlot"   validate:"required"`
}

func (r *RequestCleaningRequest) ToModel() model.CleaningRequest {
	return model.CleaningRequest{
		ID:            uuid.NewString(),
		GuestEmail:    r.GuestEmail,
		RoomNumber:    r.RoomNumber,
		TimeSlot:      r.TimeSlot,
		RequestStatus: constant.StatusPending,
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

type FirstAvailableResponse struct {
	Success  bool   `json:"success"`
	TimeSlot string `json:"timeSlot"`
}

type CleaningRequestResponse struct {
	ID            string `json:"id"`
	GuestEmail    string `json:"guest_email"`
	RoomNumber    int    `json:"room_number"`
	TimeSlot      string `json:"time_slot"`
	RequestStatus string `json:"request_status"`
}

func (r *CleaningRequestResponse) FromModel(model model.CleaningRequest) {
	r.ID = model.ID
	r.GuestEmail = model.GuestEmail
	r.RoomNumber = model.RoomNumber
	r.TimeSlot = model.TimeSlot
	r.RequestStatus = model.RequestStatus
}

func FromModels(models []model.CleaningRequest) []CleaningRequestResponse {
	requests := make([]CleaningRequestResponse, len(models))
	for i, mod := range models {
		requests[i].FromModel(mod)
	}

	return requests
}

type UpdateCleaningStatusRequest struct {
	RequestID string `json:"requestId" validate:"required"`
	Status    string `json:"status"    validate:"required,oneof=Pending 'In Progress' Completed"`
}
