package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/constants"
	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/api/dto/v1/contact"
	"github.com/osa911/contactapi/internal/models"
	"github.com/osa911/contactapi/internal/service"
	"github.com/osa911/contactapi/internal/utils"
)

// ContactSubmitter is what the handler needs from the contact service
type ContactSubmitter interface {
	Submit(ctx context.Context, sub models.ContactSubmission) error
	FailureMessage() string
}

type ContactHandler struct {
	contactService ContactSubmitter
}

func NewContactHandler(contactService ContactSubmitter) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, errors.New("contact data not found in context"))
		return
	}

	contactPtr, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("invalid contact data format"))
		return
	}

	err := h.contactService.Submit(c.Request.Context(), contactPtr.ToSubmission())
	if err != nil {
		var dispatchErr *service.DispatchError
		if errors.As(err, &dispatchErr) {
			utils.RespondError(c, err, http.StatusInternalServerError, h.contactService.FailureMessage())
			return
		}
		utils.HandleAPIError(c, err)
		return
	}

	utils.HandleSuccess(c, common.MsgContactSuccess)
}
