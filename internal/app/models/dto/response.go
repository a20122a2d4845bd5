package dto

// ErrorResponse is the flat error body every endpoint returns on failure.
// The admin UI renders the string directly.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a write that returns no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewErrorResponse wraps a message in the standard error body.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
