package model

import "hoteloncall/shared/model"

const (
	TableName  = "maintenance_requests"
	EntityName = "maintenance_request"

	FieldID            = "id"
	FieldGuestEmail    = "guest_email"
	FieldRoomNumber    = "room_number"
	FieldIssueType     = "issue_type"
	FieldDetails       = "details"
	FieldRequestStatus = "request_status"
)

type MaintenanceRequest struct {
	ID            string `db:"id"`
	GuestEmail    string `db:"guest_email"`
	RoomNumber    int    `db:"room_number"`
	IssueType     string `db:"issue_type"`
	Details       string `db:"details"`
	RequestStatus string `db:"request_status"`
	model.Metadata
}
