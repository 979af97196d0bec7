package controllers

// ErrorResponse is the uniform failure envelope
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Phone number is required"`
	Message string `json:"message,omitempty"`
}
