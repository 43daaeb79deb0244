package common

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Client-facing messages shared across handlers and middleware
const (
	MsgNotFound         = "Endpoint not found"
	MsgInternal         = "Something went wrong!"
	MsgTooManyRequests  = "Too many requests, please try again later."
	MsgInvalidBody      = "Invalid request body."
	MsgNotConfigured    = "Email service is not configured. Please contact the administrator."
	MsgContactSuccess   = "Your message has been sent successfully! Check your email for confirmation."
	MsgRequestTooLarge  = "Request body is too large."
	MsgOriginNotAllowed = "The CORS policy for this site does not allow access from the specified Origin."
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}
