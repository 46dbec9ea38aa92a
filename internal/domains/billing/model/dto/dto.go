package dto

type BillResponse struct {
	Success        bool  `json:"success"`
	TotalBillCents int64 `json:"totalBillCents"`
}

type CreateCheckoutSessionRequest struct {
	RoomNumber int `json:"roomNumber" validate:"required,gte=1"`
}

type CheckoutSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
