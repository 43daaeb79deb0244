package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/service"
)

// StatusForError maps a service error to the HTTP status and the message shown to the client.
// The message never contains the error text of infrastructure failures.
func StatusForError(err error) (int, string) {
	var validationErr *service.ValidationError
	var configErr *service.ConfigurationError
	var dispatchErr *service.DispatchError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests, common.MsgTooManyRequests
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, common.MsgNotConfigured
	case errors.As(err, &dispatchErr):
		return http.StatusInternalServerError, "Failed to send message. Please try again or contact us directly."
	default:
		return http.StatusInternalServerError, common.MsgInternal
	}
}

// HandleAPIError is a utility function for consistent error handling across the API.
// It logs the full error server-side and answers with the error envelope.
func HandleAPIError(c *gin.Context, err error) {
	status, message := StatusForError(err)
	RespondError(c, err, status, message)
}

// RespondError logs err and aborts the request with the given status and client message
func RespondError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetLogger()
	if status >= http.StatusInternalServerError {
		logger.LogHTTPError(
			c.Request.Method,
			c.Request.URL.Path,
			GetRealIP(c),
			status,
			message,
			err,
		)
	} else {
		logger.Debug("%s %s -> %d: %v", c.Request.Method, c.Request.URL.Path, status, err)
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}
