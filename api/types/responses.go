package types

// MessageResponse carries a human-readable success message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
