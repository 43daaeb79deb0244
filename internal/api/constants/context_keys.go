package constants

// Context keys for values shared between middleware and handlers
const (
	ContextKeyContact   = "contact"
	ContextKeyRequestID = "RequestID"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
)
