package dto

import (
	"hoteloncall/internal/domains/maintenance/model"
	"hoteloncall/shared/constant"
	gModel "hoteloncall/shared/model"
	"hoteloncall/shared/timezone"

	"github.com/google/uuid"
)

type RequestMaintenanceRequest struct {
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	RoomNumber int    `json:"roomNumber" validate:"required,gte=1"`
	IssueType  string `json:"issueType"  validate:"required"`
	Details    string `json:"details"    validate:"omitempty"`
}

func (r *RequestMaintenanceRequest) ToModel() model.MaintenanceRequest {
	return model.MaintenanceRequest{
		ID:            uuid.NewString(),
		GuestEmail:    r.GuestEmail,
		RoomNumber:    r.RoomNumber,
		IssueType:     r.IssueType,
		Details:       r.Details,
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

type MaintenanceRequestResponse struct {
	ID            string `json:"id"`
	GuestEmail    string `json:"guest_email"`
	RoomNumber    int    `json:"room_number"`
	IssueType     string `json:"issue_type"`
	Details       string `json:"details"`
	RequestStatus string `json:"request_status"`
}

func (r *MaintenanceRequestResponse) FromModel(model model.MaintenanceRequest) {
	r.ID = model.ID
	r.GuestEmail = model.GuestEmail
	r.RoomNumber = model.RoomNumber
	r.IssueType = model.IssueType
	r.Details = model.Details
	r.RequestStatus = model.RequestStatus
}

func FromModels(models []model.MaintenanceRequest) []MaintenanceRequestResponse {
	requests := make([]MaintenanceRequestResponse, len(models))
	for i, mod := range models {
		requests[i].FromModel(mod)
	}

	return requests
}

type UpdateMaintenanceStatusRequest struct {
	RequestID string `json:"requestId" validate:"required"`
	Status    string `json:"status"    validate:"required,oneof=Pending Resolved"`
}
