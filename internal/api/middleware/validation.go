package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/osa911/contactapi/internal/api/constants"
	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/api/dto/v1/contact"
	"github.com/osa911/contactapi/internal/api/sanitization"
	"github.com/osa911/contactapi/internal/api/validation"
	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/service"
	"github.com/osa911/contactapi/internal/utils"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validate: validation.New(),
	}
}

// ValidateContactRequest binds a JSON or form-encoded contact submission, sanitizes it and
// validates every field. All problems are reported together in one 400 response.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest

		// An empty body binds to an empty request and fails validation below
		if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(common.MsgRequestTooLarge))
				return
			}

			logging.GetLogger().Debug("Failed to bind contact request: %v", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(common.MsgInvalidBody))
			return
		}

		req.Name = sanitization.SanitizeField(req.Name)
		req.Email = sanitization.SanitizeEmail(req.Email)
		req.Phone = sanitization.SanitizeField(req.Phone)
		req.Subject = sanitization.SanitizeHeader(req.Subject)
		req.Message = sanitization.SanitizeMessage(req.Message)

		if err := m.validate.Struct(&req); err != nil {
			problems := validation.FormatValidationError(err)
			if len(problems) == 0 {
				utils.HandleAPIError(c, err)
				return
			}
			utils.HandleAPIError(c, &service.ValidationError{Problems: problems})
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
