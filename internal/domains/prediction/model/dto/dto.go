package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse is the unwrapped reply from the hosted chat model. The web
// client reads generated_text directly.
type ChatResponse struct {
	GeneratedText string `json:"generated_text"`
}
